// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedPharmacy marks a pharmacy as a favourite of a user.
// The (UserID, PharmacyID) pair is its identity and is unique per user.
type SavedPharmacy struct {
	UserID     uuid.UUID // The user who saved the pharmacy.
	PharmacyID uuid.UUID // The saved pharmacy.
	SavedAt    time.Time // When the pharmacy was saved.
}
