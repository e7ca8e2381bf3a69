// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPharmacyNotFound is returned when a pharmacy record is not found.
var ErrPharmacyNotFound = errors.New("pharmacy not found")

// PharmacyFilter narrows public pharmacy discovery queries.
// Empty fields match everything; string fields match case-insensitively
// as substrings, mirroring the store's regex filter semantics.
type PharmacyFilter struct {
	Name     string
	Location string
}

// PharmacyRepository defines the standard operations for pharmacy persistence.
type PharmacyRepository interface {
	// Create persists a new pharmacy entity to the storage.
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error

	// FindByID retrieves a single pharmacy by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// FindByUserID retrieves the pharmacy owned by the given pharmacy-role user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Pharmacy, error)

	// List retrieves pharmacies matching the filter.
	List(ctx context.Context, filter PharmacyFilter) ([]*entity.Pharmacy, error)

	// Update overwrites the mutable fields of a pharmacy profile.
	// Returns ErrPharmacyNotFound when no record matched.
	Update(ctx context.Context, pharmacy *entity.Pharmacy) error
}
