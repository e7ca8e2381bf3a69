// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is a document a patient uploads for a specific pharmacy.
// It is visible only to the uploading user and the target pharmacy; the
// read flag is mutated by the target pharmacy only, never the uploader.
type Prescription struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the prescription.
	UserID     uuid.UUID // The uploading patient.
	PharmacyID uuid.UUID // The target pharmacy.
	Title      string    // Patient-supplied title.
	Notes      string    // Optional free-form notes.
	FileURL    string    // Durable URL of the uploaded file in object storage.
	UploadedAt time.Time // When the file was uploaded.
	IsRead     bool      // Whether the target pharmacy has viewed it.
}
