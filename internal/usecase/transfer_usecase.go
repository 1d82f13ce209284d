package usecase

import (
	"context"

	"custody/internal/domain/entity"
)

// CreateTransferInput holds the data needed to open a transfer handshake.
type CreateTransferInput struct {
	CallerAddress string
	ToAddress     string
	AssetID       uint64
	Amount        uint64
}

// TransferUsecase defines the interface for the two-phase transfer handshake
type TransferUsecase interface {
	// CreateTransfer opens a pending intent from the caller to the recipient.
	// No balances move until the recipient accepts.
	CreateTransfer(ctx context.Context, input *CreateTransferInput) (*entity.TransferIntent, error)

	// AcceptTransfer resolves a pending intent as accepted, atomically moving
	// the amount from sender to recipient. Recipient only.
	AcceptTransfer(ctx context.Context, callerAddress string, transferID uint64) (*entity.TransferIntent, error)

	// RejectTransfer resolves a pending intent as rejected. Recipient only;
	// no balances move.
	RejectTransfer(ctx context.Context, callerAddress string, transferID uint64) (*entity.TransferIntent, error)

	// GetTransfer retrieves a single intent by id.
	GetTransfer(ctx context.Context, id uint64) (*entity.TransferIntent, error)

	// ListOwnedTransfers enumerates every intent the address participates in,
	// as sender or recipient.
	ListOwnedTransfers(ctx context.Context, address string) ([]*entity.TransferIntent, error)
}
