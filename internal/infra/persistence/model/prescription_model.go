package model

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionModel mirrors the 'prescriptions' table.
type PrescriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255)"`
	Notes      string    `gorm:"type:text"`
	FileURL    string    `gorm:"type:text;not null"`
	UploadedAt time.Time `gorm:"not null"`
	IsRead     bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}
