// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		db: db,
	}
}

// FindByAddress retrieves the identity registered for an address.
func (repo *identityRepository) FindByAddress(ctx context.Context, address string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := repo.db.WithContext(ctx).
		Where("address = ?", address).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by address")
	}

	return toIdentityDomain(&identityM), nil
}

// Create persists a new identity entity to the database.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("address already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required identity information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	// Update the entity with generated values
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// UpdateStatus overwrites the approval status of an address's identity.
func (repo *identityRepository) UpdateStatus(ctx context.Context, address string, status entity.IdentityStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("address = ?", address).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update identity status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:        data.ID,
		Address:   data.Address,
		Role:      entity.Role(data.Role),
		Status:    entity.IdentityStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel for persistence.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:      data.ID,
		Address: data.Address,
		Role:    data.Role.String(),
		Status:  data.Status.String(),
	}
}
