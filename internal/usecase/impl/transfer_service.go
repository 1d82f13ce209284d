package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "custody/internal/delivery/context"
	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	"custody/internal/domain/service"
	"custody/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transferService implements the TransferUsecase interface.
type transferService struct {
	txManager      repository.TransactionManager
	transferRepo   repository.TransferRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// TransferServiceParams holds dependencies for TransferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TransferRepo   repository.TransferRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		txManager:      params.TxManager,
		transferRepo:   params.TransferRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransfer opens a pending intent from the caller to the recipient.
// Preconditions run in a fixed order inside one transaction; no balances move
// until the recipient accepts. The balance check here is an early rejection
// only and is repeated at acceptance.
func (srv *transferService) CreateTransfer(ctx context.Context, input *usecase.CreateTransferInput) (*entity.TransferIntent, error) {
	intent := &entity.TransferIntent{
		FromAddress: input.CallerAddress,
		ToAddress:   input.ToAddress,
		AssetID:     input.AssetID,
		Amount:      input.Amount,
		Status:      entity.TransferStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		assetRepo := repoFactory.AssetRepo()
		transferRepo := repoFactory.TransferRepo()

		if intent.ToAddress == "" || intent.ToAddress == intent.FromAddress {
			return domainerrors.ErrInvalidRecipient
		}

		if _, err := assetRepo.FindByID(ctx, intent.AssetID); err != nil {
			if errors.Is(err, repository.ErrAssetNotFound) {
				return domainerrors.ErrAssetNotFound
			}

			return errors.Wrap(err, "failed to find asset by id")
		}

		if intent.Amount == 0 {
			return domainerrors.ErrInvalidAmount
		}

		balance, err := assetRepo.GetBalance(ctx, intent.AssetID, intent.FromAddress)
		if err != nil {
			return errors.Wrap(err, "failed to get balance")
		}
		if balance < intent.Amount {
			return domainerrors.ErrInsufficientBalance
		}

		sender, err := requireApproved(ctx, identityRepo, intent.FromAddress)
		if err != nil {
			return err
		}

		recipient, err := identityRepo.FindByAddress(ctx, intent.ToAddress)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrRecipientNotRegistered
			}

			return errors.Wrap(err, "failed to find recipient identity")
		}
		if !recipient.IsApproved() {
			return domainerrors.ErrRecipientNotApproved
		}

		if sender.Role.IsTerminal() {
			return domainerrors.ErrSenderCannotTransfer
		}
		if !sender.Role.CanTransferTo(recipient.Role) {
			return domainerrors.ErrInvalidRolePath
		}

		return transferRepo.Create(ctx, intent)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transfer requested",
		slog.Uint64("transfer_id", intent.ID),
		slog.String("from", intent.FromAddress),
		slog.String("to", intent.ToAddress),
		slog.Uint64("asset_id", intent.AssetID),
		slog.Uint64("amount", intent.Amount),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:       service.EventTransferRequested,
		TransferID: intent.ID,
		From:       intent.FromAddress,
		To:         intent.ToAddress,
		AssetID:    intent.AssetID,
		Amount:     intent.Amount,
	})

	return intent, nil
}

// AcceptTransfer resolves a pending intent as accepted, atomically moving the
// amount from sender to recipient. The sender's balance is re-checked here:
// another intent accepted since request time may have drained it.
func (srv *transferService) AcceptTransfer(ctx context.Context, callerAddress string, transferID uint64) (*entity.TransferIntent, error) {
	var intent *entity.TransferIntent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assetRepo := repoFactory.AssetRepo()
		transferRepo := repoFactory.TransferRepo()

		found, err := srv.loadPendingIntent(ctx, transferRepo, callerAddress, transferID)
		if err != nil {
			return err
		}

		balance, err := assetRepo.GetBalance(ctx, found.AssetID, found.FromAddress)
		if err != nil {
			return errors.Wrap(err, "failed to get balance")
		}
		if balance < found.Amount {
			return domainerrors.ErrInsufficientBalance
		}

		if err := assetRepo.DebitBalance(ctx, found.AssetID, found.FromAddress, found.Amount); err != nil {
			return err
		}
		if err := assetRepo.CreditBalance(ctx, found.AssetID, found.ToAddress, found.Amount); err != nil {
			return err
		}
		if err := transferRepo.UpdateStatus(ctx, found.ID, entity.TransferStatusAccepted); err != nil {
			return errors.Wrap(err, "failed to update transfer status")
		}

		found.Status = entity.TransferStatusAccepted
		found.UpdatedAt = time.Now()
		intent = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transfer accepted",
		slog.Uint64("transfer_id", intent.ID),
		slog.Uint64("asset_id", intent.AssetID),
		slog.Uint64("amount", intent.Amount),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:       service.EventTransferAccepted,
		TransferID: intent.ID,
	})

	return intent, nil
}

// RejectTransfer resolves a pending intent as rejected. No balances move.
func (srv *transferService) RejectTransfer(ctx context.Context, callerAddress string, transferID uint64) (*entity.TransferIntent, error) {
	var intent *entity.TransferIntent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transferRepo := repoFactory.TransferRepo()

		found, err := srv.loadPendingIntent(ctx, transferRepo, callerAddress, transferID)
		if err != nil {
			return err
		}

		if err := transferRepo.UpdateStatus(ctx, found.ID, entity.TransferStatusRejected); err != nil {
			return errors.Wrap(err, "failed to update transfer status")
		}

		found.Status = entity.TransferStatusRejected
		found.UpdatedAt = time.Now()
		intent = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transfer rejected",
		slog.Uint64("transfer_id", intent.ID),
	)

	srv.publishEvent(ctx, &service.LedgerEvent{
		Type:       service.EventTransferRejected,
		TransferID: intent.ID,
	})

	return intent, nil
}

// loadPendingIntent retrieves an intent and verifies the caller may resolve
// it: recipient only, pending only. Shared by accept and reject.
func (srv *transferService) loadPendingIntent(ctx context.Context, transferRepo repository.TransferRepository, callerAddress string, transferID uint64) (*entity.TransferIntent, error) {
	intent, err := transferRepo.FindByID(ctx, transferID)
	if err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			return nil, domainerrors.ErrTransferNotFound
		}

		return nil, errors.Wrap(err, "failed to find transfer by id")
	}

	if intent.ToAddress != callerAddress {
		return nil, domainerrors.ErrNotRecipient
	}
	if intent.Status.IsTerminal() {
		return nil, domainerrors.ErrTransferNotPending
	}

	return intent, nil
}

// GetTransfer retrieves a single intent by id.
func (srv *transferService) GetTransfer(ctx context.Context, id uint64) (*entity.TransferIntent, error) {
	intent, err := srv.transferRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			return nil, domainerrors.ErrTransferNotFound
		}

		return nil, errors.Wrap(err, "failed to find transfer by id")
	}

	return intent, nil
}

// ListOwnedTransfers enumerates every intent the address participates in.
func (srv *transferService) ListOwnedTransfers(ctx context.Context, address string) ([]*entity.TransferIntent, error) {
	intents, err := srv.transferRepo.ListByParticipant(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers by participant")
	}

	return intents, nil
}

// publishEvent publishes a committed ledger event. Publish failures are
// logged, never surfaced: the operation already committed.
func (srv *transferService) publishEvent(ctx context.Context, event *service.LedgerEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.eventPublisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish ledger event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
