package entity

import "time"

// Asset is a lineage-tracked batch of a good issued on the ledger. The full
// supply is credited to the creator at issuance and only ever moves between
// holders through accepted transfers; it is never minted again or burned.
type Asset struct {
	ID             uint64    `json:"id"`                        // Sequential asset id allocated at issuance.
	CreatorAddress string    `json:"creator_address"`           // Address of the approved identity that issued the batch.
	Name           string    `json:"name"`                      // Human-readable batch name; never empty.
	TotalSupply    uint64    `json:"total_supply"`              // Units issued; strictly positive and constant for the asset's lifetime.
	Metadata       string    `json:"metadata"`                  // Opaque metadata blob supplied by the creator.
	ParentAssetID  *uint64   `json:"parent_asset_id,omitempty"` // Upstream batch this one derives from. Nil exactly when the creator is a producer.
	CreatedAt      time.Time `json:"created_at"`                // Timestamp of issuance.
}

// HasParent reports whether the asset derives from an upstream batch.
func (a *Asset) HasParent() bool {
	return a.ParentAssetID != nil
}

// Holding is one entry of an address's owned-assets index: an asset the
// address has ever been credited with, and its current balance. Entries are
// append-only, so a fully transferred-out batch stays listed with amount 0.
type Holding struct {
	AssetID uint64 `json:"asset_id"`
	Amount  uint64 `json:"amount"`
}
