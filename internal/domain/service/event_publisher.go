package service

import (
	"context"
)

// LedgerEventType identifies which ledger operation an event describes.
type LedgerEventType string

const (
	EventIdentityRequested     LedgerEventType = "identity_requested"
	EventIdentityStatusChanged LedgerEventType = "identity_status_changed"
	EventAssetCreated          LedgerEventType = "asset_created"
	EventTransferRequested     LedgerEventType = "transfer_requested"
	EventTransferAccepted      LedgerEventType = "transfer_accepted"
	EventTransferRejected      LedgerEventType = "transfer_rejected"
)

// LedgerEvent is the domain event appended by a committed ledger operation.
// Events are published only after the transaction commits; a failed operation
// emits nothing. The presentation layer subscribes to these to refresh its view.
type LedgerEvent struct {
	RequestID   string          `json:"request_id,omitempty"` // For distributed tracing
	Type        LedgerEventType `json:"type"`
	Address     string          `json:"address,omitempty"`      // Identity events: the registered address
	Role        string          `json:"role,omitempty"`         // IdentityRequested: requested role
	Status      string          `json:"status,omitempty"`       // IdentityStatusChanged: new status
	AssetID     uint64          `json:"asset_id,omitempty"`     // AssetCreated / TransferRequested
	AssetName   string          `json:"asset_name,omitempty"`   // AssetCreated
	TotalSupply uint64          `json:"total_supply,omitempty"` // AssetCreated
	TransferID  uint64          `json:"transfer_id,omitempty"`  // Transfer events
	From        string          `json:"from,omitempty"`         // TransferRequested: sender address
	To          string          `json:"to,omitempty"`           // TransferRequested: recipient address
	Amount      uint64          `json:"amount,omitempty"`       // TransferRequested
}

// EventPublisher defines the interface for publishing ledger events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a committed ledger event for subscribers
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
