package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a medicine to the cart.
type AddCartItemInput struct {
	MedicineID uuid.UUID `json:"medicine_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemInput sets the absolute quantity of an existing cart line.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// --- Output DTOs ---

// CartLineOutput is one priced line of the cart. Prices are resolved at read
// time from the current inventory, never stored with the cart.
type CartLineOutput struct {
	MedicineID   uuid.UUID `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
}

// CartOutput is the priced view of the user's cart.
type CartOutput struct {
	PharmacyID   uuid.UUID        `json:"pharmacy_id"`
	PharmacyName string           `json:"pharmacy_name"`
	Lines        []CartLineOutput `json:"lines"`
	Total        float64          `json:"total"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// CartUsecase defines the patient-facing cart operations.
// A cart only ever holds items from a single pharmacy.
type CartUsecase interface {
	// AddItem adds the medicine to the cart, merging quantities when the
	// line already exists. Returns a conflict error when the medicine
	// belongs to a different pharmacy than the cart's current one.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*CartOutput, error)

	// GetCart retrieves the priced cart.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// UpdateItem sets the absolute quantity of an existing line.
	UpdateItem(ctx context.Context, userID, medicineID uuid.UUID, input *UpdateCartItemInput) (*CartOutput, error)

	// RemoveItem deletes one line. Removing the last line deletes the cart.
	RemoveItem(ctx context.Context, userID, medicineID uuid.UUID) error

	// Clear deletes the cart outright.
	Clear(ctx context.Context, userID uuid.UUID) error
}
