package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type IdentityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Address   string    `gorm:"type:varchar(128);unique;not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
