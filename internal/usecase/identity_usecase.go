// Package usecase defines the application's use case interfaces and their
// input/output data structures.
package usecase

import (
	"context"

	"custody/internal/domain/entity"
)

// RequestIdentityInput holds the data needed to register a new identity.
type RequestIdentityInput struct {
	CallerAddress string
	Role          string
}

// SetIdentityStatusInput holds the data for an admin status decision.
type SetIdentityStatusInput struct {
	CallerAddress string
	TargetAddress string
	Status        string
}

// IdentityUsecase defines the interface for identity registry use cases
type IdentityUsecase interface {
	// RequestIdentity registers the caller with the requested role, pending
	// admin review. An address registers at most once.
	RequestIdentity(ctx context.Context, input *RequestIdentityInput) (*entity.Identity, error)

	// SetIdentityStatus overwrites the target identity's status. Admin only;
	// any transition is permitted, including re-approving a rejected identity.
	SetIdentityStatus(ctx context.Context, input *SetIdentityStatusInput) (*entity.Identity, error)

	// GetIdentity retrieves the identity registered for an address.
	GetIdentity(ctx context.Context, address string) (*entity.Identity, error)

	// IsAdmin reports whether the address is the fixed admin authority.
	IsAdmin(address string) bool
}
