// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a single inventory line owned by a pharmacy.
// (PharmacyID, Name) is unique: a pharmacy stocks a medicine at most once.
type Medicine struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the inventory item.
	PharmacyID  uuid.UUID // The owning pharmacy; all mutations are scoped to it.
	Name        string    // Medicine name, unique within the owning pharmacy.
	Quantity    int       // Units in stock, never negative.
	Price       float64   // Unit price, never negative.
	Category    string    // Free-form category used for discovery filters.
	Description string    // Human-readable description.
	ImageURL    string    // Durable URL of the product image, empty when none was uploaded.
	UpdatedAt   time.Time // Timestamp of the last stock mutation.
}

// InStock reports whether the medicine can currently be added to a cart.
func (m *Medicine) InStock() bool {
	return m.Quantity > 0
}
