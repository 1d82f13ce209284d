// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityStatus represents the approval state of a registered identity.
type IdentityStatus string

const (
	// IdentityStatusPending indicates a registration awaiting admin review.
	IdentityStatusPending IdentityStatus = "pending"
	// IdentityStatusApproved indicates the identity may operate on the ledger.
	IdentityStatusApproved IdentityStatus = "approved"
	// IdentityStatusRejected indicates the admin declined the registration.
	// Rejection is reversible; the admin may re-approve later.
	IdentityStatusRejected IdentityStatus = "rejected"
	// IdentityStatusCanceled indicates a withdrawn identity.
	IdentityStatusCanceled IdentityStatus = "canceled"
)

// String returns the string representation of the IdentityStatus.
func (s IdentityStatus) String() string {
	return string(s)
}

// IsValid checks if the IdentityStatus is a valid value.
func (s IdentityStatus) IsValid() bool {
	switch s {
	case IdentityStatusPending, IdentityStatusApproved, IdentityStatusRejected, IdentityStatusCanceled:
		return true
	default:
		return false
	}
}

// Identity binds one on-ledger address to a supply-chain role and its approval
// state. An address registers at most once; only the admin mutates the status.
type Identity struct {
	ID        uuid.UUID      `json:"id"`         // The unique identifier for this identity record.
	Address   string         `json:"address"`    // The caller address this identity belongs to. One identity per address.
	Role      Role           `json:"role"`       // The supply-chain role requested at registration; immutable afterwards.
	Status    IdentityStatus `json:"status"`     // Current approval state, mutated only by the admin authority.
	CreatedAt time.Time      `json:"created_at"` // Timestamp of the registration request.
	UpdatedAt time.Time      `json:"updated_at"` // Timestamp of the last status change.
}

// IsApproved reports whether the identity may operate on the ledger.
func (i *Identity) IsApproved() bool {
	return i.Status == IdentityStatusApproved
}
