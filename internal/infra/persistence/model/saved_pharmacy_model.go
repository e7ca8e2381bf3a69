package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedPharmacyModel mirrors the 'saved_pharmacies' table. The composite
// primary key keeps each (user, pharmacy) pair unique.
type SavedPharmacyModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	PharmacyID uuid.UUID `gorm:"type:uuid;primary_key"`
	SavedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SavedPharmacyModel) TableName() string {
	return "saved_pharmacies"
}
