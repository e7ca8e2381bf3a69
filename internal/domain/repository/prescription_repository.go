package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrescriptionNotFound is returned when a prescription is not found.
var ErrPrescriptionNotFound = errors.New("prescription not found")

// PrescriptionRepository defines the standard operations for prescription
// persistence.
type PrescriptionRepository interface {
	// Create persists a new prescription record.
	Create(ctx context.Context, prescription *entity.Prescription) error

	// FindByID retrieves a single prescription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)

	// FindByUser retrieves every prescription uploaded by the user,
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error)

	// FindByPharmacy retrieves every prescription addressed to the
	// pharmacy, newest first.
	FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Prescription, error)

	// MarkRead flags one prescription addressed to the pharmacy as read.
	// Returns ErrPrescriptionNotFound when no record matched.
	MarkRead(ctx context.Context, id, pharmacyID uuid.UUID) error
}
