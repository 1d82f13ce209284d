package model

import "time"

// AssetModel mirrors the 'assets' table. Asset ids are sequential so callers
// can reference batches by small integers.
type AssetModel struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement"`
	CreatorAddress string  `gorm:"type:varchar(128);not null;index"`
	Name           string  `gorm:"type:varchar(255);not null"`
	TotalSupply    uint64  `gorm:"not null"`
	Metadata       string  `gorm:"type:text"`
	ParentAssetID  *uint64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Parent   *AssetModel    `gorm:"foreignKey:ParentAssetID"`
	Balances []BalanceModel `gorm:"foreignKey:AssetID"`
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// BalanceModel mirrors the 'balances' table: one row per (asset, holder) pair.
// Rows are append-only and double as the owned-assets index; a holder that
// transferred everything out keeps its row with amount 0.
type BalanceModel struct {
	AssetID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Address   string `gorm:"type:varchar(128);primaryKey;index"`
	Amount    uint64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BalanceModel) TableName() string {
	return "balances"
}
