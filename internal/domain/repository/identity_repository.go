// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"custody/internal/domain/entity"
)

// ErrIdentityNotFound is a domain-specific error returned when an identity is not found.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for identity persistence.
// The application layer will depend on this interface, not the concrete implementation.
type IdentityRepository interface {
	// FindByAddress retrieves the identity registered for an address.
	FindByAddress(ctx context.Context, address string) (*entity.Identity, error)

	// Create persists a new identity entity to the storage.
	Create(ctx context.Context, identity *entity.Identity) error

	// UpdateStatus overwrites the approval status of an address's identity.
	UpdateStatus(ctx context.Context, address string, status entity.IdentityStatus) error
}
