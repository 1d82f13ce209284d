package postgres

import (
	"context"

	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	"custody/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transferRepository implements the repository.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository is the constructor for transferRepository.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// Create persists a new pending intent and backfills the generated id and timestamps.
func (repo *transferRepository) Create(ctx context.Context, intent *entity.TransferIntent) error {
	transferM := fromTransferDomain(intent)

	if err := repo.db.WithContext(ctx).Create(transferM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAssetNotFound.WrapMessage("asset reference is invalid")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required transfer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transfer")
	}

	intent.ID = transferM.ID
	intent.CreatedAt = transferM.CreatedAt
	intent.UpdatedAt = transferM.UpdatedAt

	return nil
}

// FindByID retrieves a single intent by its sequential id.
func (repo *transferRepository) FindByID(ctx context.Context, id uint64) (*entity.TransferIntent, error) {
	var transferM model.TransferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transferM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransferNotFound
		}

		return nil, errors.Wrap(err, "failed to find transfer by id")
	}

	return toTransferDomain(&transferM), nil
}

// UpdateStatus resolves the intent. Callers must have verified the current
// status inside the same transaction; resolved intents never change again.
func (repo *transferRepository) UpdateStatus(ctx context.Context, id uint64, status entity.TransferStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransferModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transfer status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransferNotFound
	}

	return nil
}

// ListByParticipant enumerates every intent the address appears in, as sender or recipient.
func (repo *transferRepository) ListByParticipant(ctx context.Context, address string) ([]*entity.TransferIntent, error) {
	var transferModels []*model.TransferModel

	if err := repo.db.WithContext(ctx).
		Where("from_address = ? OR to_address = ?", address, address).
		Order("id ASC").
		Find(&transferModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transfers by participant")
	}

	intents := make([]*entity.TransferIntent, 0, len(transferModels))
	for _, transferM := range transferModels {
		intents = append(intents, toTransferDomain(transferM))
	}

	return intents, nil
}

// --- Mapper Functions ---

// toTransferDomain converts a GORM TransferModel to a domain TransferIntent entity.
func toTransferDomain(data *model.TransferModel) *entity.TransferIntent {
	if data == nil {
		return nil
	}

	return &entity.TransferIntent{
		ID:          data.ID,
		FromAddress: data.FromAddress,
		ToAddress:   data.ToAddress,
		AssetID:     data.AssetID,
		Amount:      data.Amount,
		Status:      entity.TransferStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTransferDomain converts a domain TransferIntent entity to a GORM TransferModel for persistence.
func fromTransferDomain(data *entity.TransferIntent) *model.TransferModel {
	if data == nil {
		return nil
	}

	return &model.TransferModel{
		ID:          data.ID,
		FromAddress: data.FromAddress,
		ToAddress:   data.ToAddress,
		AssetID:     data.AssetID,
		Amount:      data.Amount,
		Status:      data.Status.String(),
	}
}
