package model

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyModel mirrors the 'pharmacies' table. Each pharmacy account owns
// exactly one pharmacy profile.
type PharmacyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;unique"`
	Name           string    `gorm:"type:varchar(255);not null"`
	DigitalAddress string    `gorm:"type:varchar(100)"`
	Latitude       float64   `gorm:"type:decimal(10,7)"`
	Longitude      float64   `gorm:"type:decimal(10,7)"`
	FlyerURL       string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}
