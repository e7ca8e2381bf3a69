package usecase

import (
	"context"
	"io"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// MedicineInput defines the full set of mutable fields for an inventory item.
// It is used for both creation and full replacement.
type MedicineInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Price       float64 `json:"price" validate:"min=0"`
	Category    string  `json:"category" validate:"max=100"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// UploadMedicineImageInput defines a product image upload for one
// inventory item.
type UploadMedicineImageInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// ListStockInput narrows a pharmacy's own stock listing.
type ListStockInput struct {
	Query  string `query:"q"`
	Limit  int    `query:"limit" validate:"min=0,max=200"`
	Offset int    `query:"offset" validate:"min=0"`
}

// InventoryUsecase defines the pharmacy-facing inventory operations.
// Every operation is scoped to the pharmacy owned by the calling account.
type InventoryUsecase interface {
	// AddMedicine creates a new inventory item for the caller's pharmacy.
	AddMedicine(ctx context.Context, userID uuid.UUID, input *MedicineInput) (*entity.Medicine, error)

	// ListStock retrieves the caller's stock with optional name filtering.
	ListStock(ctx context.Context, userID uuid.UUID, input *ListStockInput) ([]*entity.Medicine, error)

	// GetMedicine retrieves one of the caller's items.
	GetMedicine(ctx context.Context, userID, medicineID uuid.UUID) (*entity.Medicine, error)

	// UpdateMedicine fully replaces one of the caller's items.
	UpdateMedicine(ctx context.Context, userID, medicineID uuid.UUID, input *MedicineInput) (*entity.Medicine, error)

	// UploadMedicineImage stores a product image for one of the caller's
	// items and records its durable URL.
	UploadMedicineImage(ctx context.Context, userID, medicineID uuid.UUID, input *UploadMedicineImageInput) (*entity.Medicine, error)

	// DeleteMedicine removes one of the caller's items.
	DeleteMedicine(ctx context.Context, userID, medicineID uuid.UUID) error
}
