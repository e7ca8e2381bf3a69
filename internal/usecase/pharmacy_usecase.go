package usecase

import (
	"context"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BrowsePharmaciesInput narrows the public pharmacy listing.
type BrowsePharmaciesInput struct {
	Name     string `query:"name"`
	Location string `query:"location"`
}

// SearchMedicinesInput narrows the public medicine search.
type SearchMedicinesInput struct {
	Name        string     `query:"name"`
	Category    string     `query:"category"`
	PharmacyID  *uuid.UUID `query:"pharmacy_id"`
	InStockOnly bool       `query:"in_stock"`
}

// --- Output DTOs ---

// PlatformCountsOutput reports the public platform-wide totals.
type PlatformCountsOutput struct {
	Pharmacies int64 `json:"pharmacies"`
	Medicines  int64 `json:"medicines"`
}

// MedicineDetailOutput pairs a medicine with its selling pharmacy's public
// profile, the shape discovery endpoints return.
type MedicineDetailOutput struct {
	Medicine *entity.Medicine `json:"medicine"`
	Pharmacy *entity.Pharmacy `json:"pharmacy"`
}

// SavedPharmacyOutput pairs a saved-list entry with its pharmacy profile.
type SavedPharmacyOutput struct {
	Pharmacy *entity.Pharmacy      `json:"pharmacy"`
	Saved    *entity.SavedPharmacy `json:"saved"`
}

// PharmacyUsecase defines public pharmacy discovery plus the patient's
// saved pharmacy list.
type PharmacyUsecase interface {
	// Browse retrieves pharmacies matching the filter. No authentication
	// required.
	Browse(ctx context.Context, input *BrowsePharmaciesInput) ([]*entity.Pharmacy, error)

	// Get retrieves one pharmacy's public profile.
	Get(ctx context.Context, pharmacyID uuid.UUID) (*entity.Pharmacy, error)

	// ListMedicines retrieves a pharmacy's public stock.
	ListMedicines(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Medicine, error)

	// SearchMedicines retrieves medicines across all pharmacies, each joined
	// with its selling pharmacy.
	SearchMedicines(ctx context.Context, input *SearchMedicinesInput) ([]*MedicineDetailOutput, error)

	// GetMedicine retrieves one medicine joined with its selling pharmacy.
	GetMedicine(ctx context.Context, medicineID uuid.UUID) (*MedicineDetailOutput, error)

	// Counts reports platform-wide totals for the public landing page.
	Counts(ctx context.Context) (*PlatformCountsOutput, error)

	// MedicineCount reports how many items one pharmacy stocks.
	MedicineCount(ctx context.Context, pharmacyID uuid.UUID) (int64, error)

	// SavePharmacy adds a pharmacy to the caller's saved list.
	SavePharmacy(ctx context.Context, userID, pharmacyID uuid.UUID) error

	// UnsavePharmacy removes a pharmacy from the caller's saved list.
	UnsavePharmacy(ctx context.Context, userID, pharmacyID uuid.UUID) error

	// ListSaved retrieves the caller's saved pharmacies, newest first.
	ListSaved(ctx context.Context, userID uuid.UUID) ([]*SavedPharmacyOutput, error)
}
