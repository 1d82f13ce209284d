package model

import "time"

// TransferModel mirrors the 'transfers' table. The from/to indexes are the
// owned-transfers index: participants enumerate their intents through them.
type TransferModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	FromAddress string `gorm:"type:varchar(128);not null;index"`
	ToAddress   string `gorm:"type:varchar(128);not null;index"`
	AssetID     uint64 `gorm:"not null;index"`
	Amount      uint64 `gorm:"not null"`
	Status      string `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Asset *AssetModel `gorm:"foreignKey:AssetID"`
}

// TableName explicitly sets the table name for GORM.
func (TransferModel) TableName() string {
	return "transfers"
}
