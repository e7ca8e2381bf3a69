package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the saved pharmacy list.
var (
	// ErrSavedPharmacyNotFound is returned when the pharmacy is not on
	// the user's saved list.
	ErrSavedPharmacyNotFound = errors.New("saved pharmacy not found")
	// ErrDuplicateSavedPharmacy is returned when the pharmacy is already
	// on the user's saved list.
	ErrDuplicateSavedPharmacy = errors.New("pharmacy already saved")
)

// SavedPharmacyRepository defines the standard operations for the user's
// saved pharmacy list.
type SavedPharmacyRepository interface {
	// Create adds a pharmacy to the user's saved list. Returns
	// ErrDuplicateSavedPharmacy when the pair already exists.
	Create(ctx context.Context, saved *entity.SavedPharmacy) error

	// Delete removes a pharmacy from the user's saved list. Returns
	// ErrSavedPharmacyNotFound when no record matched.
	Delete(ctx context.Context, userID, pharmacyID uuid.UUID) error

	// FindByUser retrieves the user's saved list, most recently saved first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPharmacy, error)

	// Exists reports whether the pharmacy is on the user's saved list.
	Exists(ctx context.Context, userID, pharmacyID uuid.UUID) (bool, error)
}
