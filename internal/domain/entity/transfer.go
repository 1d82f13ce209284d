package entity

import "time"

// TransferStatus represents the handshake state of a transfer intent.
type TransferStatus string

const (
	// TransferStatusPending indicates the intent awaits the recipient's decision.
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusAccepted indicates the recipient accepted and balances moved.
	TransferStatusAccepted TransferStatus = "accepted"
	// TransferStatusRejected indicates the recipient declined; no balances moved.
	TransferStatusRejected TransferStatus = "rejected"
)

// String returns the string representation of the TransferStatus.
func (s TransferStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the intent has been resolved. Terminal intents
// never change status again.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusAccepted || s == TransferStatusRejected
}

// TransferIntent is one leg of the two-phase custody handshake. The sender
// creates it; the recipient resolves it exactly once. Balances move only on
// acceptance, never at request time.
type TransferIntent struct {
	ID          uint64         `json:"id"`           // Sequential transfer id allocated at request time.
	FromAddress string         `json:"from_address"` // Sender; must hold the amount when the intent is accepted.
	ToAddress   string         `json:"to_address"`   // Recipient; the only address allowed to resolve the intent.
	AssetID     uint64         `json:"asset_id"`     // Batch being moved.
	Amount      uint64         `json:"amount"`       // Units to move; strictly positive.
	Status      TransferStatus `json:"status"`       // Pending until the recipient accepts or rejects.
	CreatedAt   time.Time      `json:"created_at"`   // Timestamp of the request.
	UpdatedAt   time.Time      `json:"updated_at"`   // Timestamp of the resolution, if any.
}

// Involves reports whether the address participates in this intent.
func (t *TransferIntent) Involves(address string) bool {
	return t.FromAddress == address || t.ToAddress == address
}
