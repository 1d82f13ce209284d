package repository

import (
	"context"
	"errors"

	"custody/internal/domain/entity"
)

// ErrAssetNotFound is a domain-specific error returned when an asset is not found.
var ErrAssetNotFound = errors.New("asset not found")

// AssetRepository defines the standard operations for asset and balance persistence.
// Balance rows are append-only: an address that ever held an asset keeps its row
// even after the balance drops to zero, which is what ListHoldings enumerates.
type AssetRepository interface {
	// Create persists a new asset and backfills the generated id and timestamps.
	Create(ctx context.Context, asset *entity.Asset) error

	// FindByID retrieves a single asset by its sequential id.
	FindByID(ctx context.Context, id uint64) (*entity.Asset, error)

	// GetBalance returns the current balance of an address for an asset.
	// Addresses that were never credited report zero without error.
	GetBalance(ctx context.Context, assetID uint64, address string) (uint64, error)

	// CreditBalance adds amount to the address's balance for the asset,
	// creating the holding row if the address never held it before.
	CreditBalance(ctx context.Context, assetID uint64, address string, amount uint64) error

	// DebitBalance subtracts amount from the address's balance for the asset.
	// Callers must have verified sufficient balance inside the same transaction.
	DebitBalance(ctx context.Context, assetID uint64, address string, amount uint64) error

	// ListHoldings enumerates every asset the address has ever held, with the
	// current balance for each (possibly zero).
	ListHoldings(ctx context.Context, address string) ([]*entity.Holding, error)
}
