package impl

import (
	"context"
	"log/slog"

	deliverycontext "custody/internal/delivery/context"
	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	"custody/internal/domain/service"
	"custody/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assetService implements the AssetUsecase interface.
type assetService struct {
	txManager      repository.TransactionManager
	assetRepo      repository.AssetRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssetRepo      repository.AssetRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		txManager:      params.TxManager,
		assetRepo:      params.AssetRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAsset issues a new batch and credits its full supply to the caller.
// Preconditions run in a fixed order inside one transaction; the first
// failure aborts with no mutation.
func (srv *assetService) CreateAsset(ctx context.Context, input *usecase.CreateAssetInput) (*entity.Asset, error) {
	asset := &entity.Asset{
		CreatorAddress: input.CallerAddress,
		Name:           input.Name,
		TotalSupply:    input.TotalSupply,
		Metadata:       input.Metadata,
		ParentAssetID:  normalizeParentID(input.ParentAssetID),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		assetRepo := repoFactory.AssetRepo()

		creator, err := requireApproved(ctx, identityRepo, input.CallerAddress)
		if err != nil {
			return err
		}

		if asset.Name == "" {
			return domainerrors.ErrEmptyName
		}
		if asset.TotalSupply == 0 {
			return domainerrors.ErrInvalidSupply
		}

		if err := srv.checkLineage(ctx, assetRepo, creator, asset); err != nil {
			return err
		}

		if err := assetRepo.Create(ctx, asset); err != nil {
			return errors.Wrap(err, "failed to create asset")
		}

		return assetRepo.CreditBalance(ctx, asset.ID, asset.CreatorAddress, asset.TotalSupply)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Asset created",
		slog.Uint64("asset_id", asset.ID),
		slog.String("creator", asset.CreatorAddress),
		slog.Uint64("total_supply", asset.TotalSupply),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:        service.EventAssetCreated,
		Address:     asset.CreatorAddress,
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		TotalSupply: asset.TotalSupply,
	})

	return asset, nil
}

// checkLineage enforces the role-specific parent rules. Producers issue root
// batches; factories and retailers must derive theirs from a held parent;
// consumers never issue.
func (srv *assetService) checkLineage(ctx context.Context, assetRepo repository.AssetRepository, creator *entity.Identity, asset *entity.Asset) error {
	if creator.Role.IsTerminal() {
		return domainerrors.ErrConsumerCannotIssue
	}

	if !creator.Role.RequiresParentAsset() {
		if asset.HasParent() {
			return domainerrors.ErrUnexpectedParent
		}

		return nil
	}

	if !asset.HasParent() {
		return domainerrors.ErrInvalidParent
	}

	if _, err := assetRepo.FindByID(ctx, *asset.ParentAssetID); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return domainerrors.ErrInvalidParent
		}

		return errors.Wrap(err, "failed to find parent asset")
	}

	parentBalance, err := assetRepo.GetBalance(ctx, *asset.ParentAssetID, creator.Address)
	if err != nil {
		return errors.Wrap(err, "failed to get parent balance")
	}
	if parentBalance == 0 {
		return domainerrors.ErrParentNotOwned
	}

	return nil
}

// GetAsset retrieves a single asset by id, without its balance map.
func (srv *assetService) GetAsset(ctx context.Context, id uint64) (*entity.Asset, error) {
	asset, err := srv.assetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by id")
	}

	return asset, nil
}

// GetBalance returns the address's current balance for the asset. Addresses
// never credited report zero; only an unknown asset id is an error.
func (srv *assetService) GetBalance(ctx context.Context, assetID uint64, address string) (uint64, error) {
	if _, err := srv.assetRepo.FindByID(ctx, assetID); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return 0, domainerrors.ErrAssetNotFound
		}

		return 0, errors.Wrap(err, "failed to find asset by id")
	}

	balance, err := srv.assetRepo.GetBalance(ctx, assetID, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// ListOwnedAssets enumerates every asset the address has ever held with its
// current balance. Entries are append-only, so zero balances stay listed.
func (srv *assetService) ListOwnedAssets(ctx context.Context, address string) ([]*entity.Holding, error) {
	holdings, err := srv.assetRepo.ListHoldings(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list holdings")
	}

	return holdings, nil
}

// publishEvent publishes a committed ledger event. Publish failures are
// logged, never surfaced: the operation already committed.
func (srv *assetService) publishEvent(ctx context.Context, event *service.LedgerEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.eventPublisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish ledger event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// normalizeParentID treats a zero parent id the same as an absent one.
func normalizeParentID(parentID *uint64) *uint64 {
	if parentID != nil && *parentID == 0 {
		return nil
	}

	return parentID
}
