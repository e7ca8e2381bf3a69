package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicineModel mirrors the 'medicines' table. A pharmacy cannot stock two
// items with the same name, enforced by the composite unique index.
type MedicineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PharmacyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_medicines_pharmacy_name"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_medicines_pharmacy_name"`
	Quantity    int       `gorm:"not null;default:0"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}
