package usecase

import (
	"context"

	"custody/internal/domain/entity"
)

// CreateAssetInput holds the data needed to issue a new asset batch.
type CreateAssetInput struct {
	CallerAddress string
	Name          string
	TotalSupply   uint64
	Metadata      string
	ParentAssetID *uint64
}

// AssetUsecase defines the interface for asset ledger use cases
type AssetUsecase interface {
	// CreateAsset issues a new batch, crediting the full supply to the caller.
	// Lineage rules depend on the caller's role.
	CreateAsset(ctx context.Context, input *CreateAssetInput) (*entity.Asset, error)

	// GetAsset retrieves a single asset by id, without its balance map.
	GetAsset(ctx context.Context, id uint64) (*entity.Asset, error)

	// GetBalance returns the address's current balance for the asset.
	// Never-credited addresses report zero.
	GetBalance(ctx context.Context, assetID uint64, address string) (uint64, error)

	// ListOwnedAssets enumerates every asset the address has ever held with
	// its current balance. Fully transferred-out batches stay listed at zero.
	ListOwnedAssets(ctx context.Context, address string) ([]*entity.Holding, error)
}
