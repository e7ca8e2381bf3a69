// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrMedicineNotFound is returned when an inventory item is not found.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrDuplicateMedicine is returned when a pharmacy already stocks a
	// medicine with the same name.
	ErrDuplicateMedicine = errors.New("medicine already exists for this pharmacy")
)

// MedicineFilter narrows public medicine discovery queries.
// String fields match case-insensitively as substrings.
type MedicineFilter struct {
	Name        string
	Category    string
	PharmacyID  *uuid.UUID
	InStockOnly bool
}

// MedicineRepository defines the standard operations for inventory persistence.
type MedicineRepository interface {
	// Create persists a new inventory item. Returns ErrDuplicateMedicine
	// when (pharmacy, name) already exists.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// FindByID retrieves a single item by its unique ID, regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)

	// FindByPharmacyAndID retrieves an item scoped to its owning pharmacy.
	FindByPharmacyAndID(ctx context.Context, pharmacyID, id uuid.UUID) (*entity.Medicine, error)

	// FindByPharmacy retrieves a pharmacy's stock with an optional
	// case-insensitive name query and pagination.
	FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID, query string, limit, offset int) ([]*entity.Medicine, error)

	// Search retrieves items matching the discovery filter.
	Search(ctx context.Context, filter MedicineFilter) ([]*entity.Medicine, error)

	// Replace overwrites every mutable field of an item, scoped to its
	// owning pharmacy. Returns ErrMedicineNotFound when no record matched.
	Replace(ctx context.Context, medicine *entity.Medicine) error

	// Delete removes an item scoped to its owning pharmacy.
	// Returns ErrMedicineNotFound when no record matched.
	Delete(ctx context.Context, pharmacyID, id uuid.UUID) error

	// CountAll returns the total number of inventory items on the platform.
	CountAll(ctx context.Context) (int64, error)

	// CountByPharmacy returns the number of items stocked by one pharmacy.
	CountByPharmacy(ctx context.Context, pharmacyID uuid.UUID) (int64, error)
}
