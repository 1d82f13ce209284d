// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"custody/config"
	deliverycontext "custody/internal/delivery/context"
	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	"custody/internal/domain/service"
	"custody/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager      repository.TransactionManager
	identityRepo   repository.IdentityRepository
	eventPublisher service.EventPublisher
	adminAddress   string
	logger         *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	IdentityRepo   repository.IdentityRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	adminAddress := ""
	if params.Config != nil && params.Config.Ledger != nil {
		adminAddress = params.Config.Ledger.AdminAddress
	}

	return &identityService{
		txManager:      params.TxManager,
		identityRepo:   params.IdentityRepo,
		eventPublisher: params.EventPublisher,
		adminAddress:   adminAddress,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestIdentity registers the caller with the requested role, pending admin review.
func (srv *identityService) RequestIdentity(ctx context.Context, input *usecase.RequestIdentityInput) (*entity.Identity, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	identity := &entity.Identity{
		ID:      uuid.New(),
		Address: input.CallerAddress,
		Role:    role,
		Status:  entity.IdentityStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		_, err := identityRepo.FindByAddress(ctx, input.CallerAddress)
		if err == nil {
			return domainerrors.ErrAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrIdentityNotFound) {
			return errors.Wrap(err, "failed to find identity by address")
		}

		return identityRepo.Create(ctx, identity)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Identity requested",
		slog.String("address", identity.Address),
		slog.String("role", identity.Role.String()),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:    service.EventIdentityRequested,
		Address: identity.Address,
		Role:    identity.Role.String(),
	})

	return identity, nil
}

// SetIdentityStatus overwrites the target identity's status. Admin only.
// Any transition is permitted; rejection is reversible.
func (srv *identityService) SetIdentityStatus(ctx context.Context, input *usecase.SetIdentityStatusInput) (*entity.Identity, error) {
	if !srv.IsAdmin(input.CallerAddress) {
		return nil, domainerrors.ErrNotAuthorized
	}

	status := entity.IdentityStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown identity status")
	}

	var identity *entity.Identity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		found, err := identityRepo.FindByAddress(ctx, input.TargetAddress)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to find identity by address")
		}

		if err := identityRepo.UpdateStatus(ctx, input.TargetAddress, status); err != nil {
			return errors.Wrap(err, "failed to update identity status")
		}

		found.Status = status
		identity = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Identity status changed",
		slog.String("address", identity.Address),
		slog.String("status", identity.Status.String()),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:    service.EventIdentityStatusChanged,
		Address: identity.Address,
		Status:  identity.Status.String(),
	})

	return identity, nil
}

// GetIdentity retrieves the identity registered for an address.
func (srv *identityService) GetIdentity(ctx context.Context, address string) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by address")
	}

	return identity, nil
}

// IsAdmin reports whether the address is the fixed admin authority.
func (srv *identityService) IsAdmin(address string) bool {
	return srv.adminAddress != "" && address == srv.adminAddress
}

// publishEvent publishes a committed ledger event. Publish failures are
// logged, never surfaced: the operation already committed.
func (srv *identityService) publishEvent(ctx context.Context, event *service.LedgerEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.eventPublisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish ledger event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// requireApproved loads the identity for an address and verifies it may
// operate on the ledger. Shared by the asset and transfer services.
func requireApproved(ctx context.Context, identityRepo repository.IdentityRepository, address string) (*entity.Identity, error) {
	identity, err := identityRepo.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrNotRegistered
		}

		return nil, errors.Wrap(err, "failed to find identity by address")
	}
	if !identity.IsApproved() {
		return nil, domainerrors.ErrNotApproved
	}

	return identity, nil
}
