package repository

import (
	"context"
	"errors"

	"custody/internal/domain/entity"
)

// ErrTransferNotFound is a domain-specific error returned when a transfer intent is not found.
var ErrTransferNotFound = errors.New("transfer not found")

// TransferRepository defines the standard operations for transfer-intent persistence.
type TransferRepository interface {
	// Create persists a new pending intent and backfills the generated id and timestamps.
	Create(ctx context.Context, intent *entity.TransferIntent) error

	// FindByID retrieves a single intent by its sequential id.
	FindByID(ctx context.Context, id uint64) (*entity.TransferIntent, error)

	// UpdateStatus resolves the intent. Intents are terminal once resolved;
	// callers must have verified the current status inside the same transaction.
	UpdateStatus(ctx context.Context, id uint64, status entity.TransferStatus) error

	// ListByParticipant enumerates every intent the address appears in,
	// as sender or recipient.
	ListByParticipant(ctx context.Context, address string) ([]*entity.TransferIntent, error)
}
