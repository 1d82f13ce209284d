package postgres

import (
	"context"

	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	"custody/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assetRepository implements the repository.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// Create persists a new asset and backfills the generated id and timestamps.
func (repo *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidParent.WrapMessage("parent asset reference is invalid")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required asset information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt

	return nil
}

// FindByID retrieves a single asset by its sequential id.
func (repo *assetRepository) FindByID(ctx context.Context, id uint64) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by id")
	}

	return toAssetDomain(&assetM), nil
}

// GetBalance returns the current balance of an address for an asset.
// Addresses that were never credited report zero without error.
func (repo *assetRepository) GetBalance(ctx context.Context, assetID uint64, address string) (uint64, error) {
	var balanceM model.BalanceModel

	if err := repo.db.WithContext(ctx).
		Where("asset_id = ? AND address = ?", assetID, address).
		First(&balanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get balance")
	}

	return balanceM.Amount, nil
}

// CreditBalance adds amount to the address's balance for the asset, creating
// the holding row if the address never held it before. The insert is also what
// extends the owned-assets index; rows are never removed afterwards.
func (repo *assetRepository) CreditBalance(ctx context.Context, assetID uint64, address string, amount uint64) error {
	balanceM := &model.BalanceModel{
		AssetID: assetID,
		Address: address,
		Amount:  amount,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}, {Name: "address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"amount": gorm.Expr("balances.amount + ?", amount),
			}),
		}).
		Create(balanceM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to credit balance")
	}

	return nil
}

// DebitBalance subtracts amount from the address's balance for the asset.
// Callers must have verified sufficient balance inside the same transaction.
func (repo *assetRepository) DebitBalance(ctx context.Context, assetID uint64, address string, amount uint64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BalanceModel{}).
		Where("asset_id = ? AND address = ? AND amount >= ?", assetID, address, amount).
		Update("amount", gorm.Expr("amount - ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit balance")
	}
	if result.RowsAffected == 0 {
		// The guard in the WHERE clause did not match: either the holding row
		// is missing or the balance dropped below the amount.
		return domainerrors.ErrInsufficientBalance.WrapMessage("debit exceeds current balance")
	}

	return nil
}

// ListHoldings enumerates every asset the address has ever held, with the
// current balance for each (possibly zero).
func (repo *assetRepository) ListHoldings(ctx context.Context, address string) ([]*entity.Holding, error) {
	var balanceModels []*model.BalanceModel

	if err := repo.db.WithContext(ctx).
		Where("address = ?", address).
		Order("asset_id ASC").
		Find(&balanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list holdings")
	}

	holdings := make([]*entity.Holding, 0, len(balanceModels))
	for _, balanceM := range balanceModels {
		holdings = append(holdings, &entity.Holding{
			AssetID: balanceM.AssetID,
			Amount:  balanceM.Amount,
		})
	}

	return holdings, nil
}

// --- Mapper Functions ---

// toAssetDomain converts a GORM AssetModel to a domain Asset entity.
func toAssetDomain(data *model.AssetModel) *entity.Asset {
	if data == nil {
		return nil
	}

	return &entity.Asset{
		ID:             data.ID,
		CreatorAddress: data.CreatorAddress,
		Name:           data.Name,
		TotalSupply:    data.TotalSupply,
		Metadata:       data.Metadata,
		ParentAssetID:  data.ParentAssetID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAssetDomain converts a domain Asset entity to a GORM AssetModel for persistence.
func fromAssetDomain(data *entity.Asset) *model.AssetModel {
	if data == nil {
		return nil
	}

	return &model.AssetModel{
		ID:             data.ID,
		CreatorAddress: data.CreatorAddress,
		Name:           data.Name,
		TotalSupply:    data.TotalSupply,
		Metadata:       data.Metadata,
		ParentAssetID:  data.ParentAssetID,
	}
}
