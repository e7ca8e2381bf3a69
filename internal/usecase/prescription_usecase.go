package usecase

import (
	"context"
	"io"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadPrescriptionInput defines a patient's prescription upload. The file
// content type is checked against the accepted whitelist before any bytes
// reach the storage backend.
type UploadPrescriptionInput struct {
	PharmacyID  uuid.UUID
	Title       string
	Notes       string
	FileName    string
	ContentType string
	Content     io.Reader
}

// PrescriptionUsecase defines the prescription exchange between patients and
// pharmacies.
type PrescriptionUsecase interface {
	// Upload stores the prescription file and records it for the target
	// pharmacy. Returns an unsupported media type error for content types
	// outside the whitelist and an upload error when storage fails.
	Upload(ctx context.Context, userID uuid.UUID, input *UploadPrescriptionInput) (*entity.Prescription, error)

	// Get retrieves one prescription, visible only to its uploader and the
	// target pharmacy.
	Get(ctx context.Context, callerID, prescriptionID uuid.UUID) (*entity.Prescription, error)

	// ListMine retrieves the caller's own uploads, newest first.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error)

	// ListForPharmacy retrieves prescriptions addressed to the caller's
	// pharmacy, newest first.
	ListForPharmacy(ctx context.Context, pharmacyUserID uuid.UUID) ([]*entity.Prescription, error)

	// MarkRead flags one received prescription as read.
	MarkRead(ctx context.Context, pharmacyUserID, prescriptionID uuid.UUID) error
}
