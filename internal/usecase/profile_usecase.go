package usecase

import (
	"context"
	"io"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdatePharmacyProfileInput defines the mutable fields of a pharmacy profile.
type UpdatePharmacyProfileInput struct {
	Name           string  `json:"name" validate:"required,max=255"`
	DigitalAddress string  `json:"digital_address" validate:"max=100"`
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UploadFlyerInput defines a pharmacy's flyer image upload.
type UploadFlyerInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// --- Output DTOs ---

// ProfileOutput is the caller's own account view. Pharmacy is nil for
// non-pharmacy accounts.
type ProfileOutput struct {
	User     *entity.User     `json:"user"`
	Pharmacy *entity.Pharmacy `json:"pharmacy,omitempty"`
}

// ProfileUsecase defines the authenticated account's self-service operations.
type ProfileUsecase interface {
	// GetProfile retrieves the caller's account and, for pharmacy accounts,
	// the owned pharmacy profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// UpdatePharmacyProfile replaces the mutable fields of the caller's
	// pharmacy profile.
	UpdatePharmacyProfile(ctx context.Context, userID uuid.UUID, input *UpdatePharmacyProfileInput) (*entity.Pharmacy, error)

	// UploadFlyer stores a flyer image and records its URL on the caller's
	// pharmacy profile.
	UploadFlyer(ctx context.Context, userID uuid.UUID, input *UploadFlyerInput) (*entity.Pharmacy, error)
}
