// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pharmacy is the storefront record linked 1:1 to a pharmacy-role User.
// It is created atomically with its owning User during pharmacy registration.
type Pharmacy struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the pharmacy.
	UserID         uuid.UUID // The owning pharmacy-role user; exactly one Pharmacy exists per such user.
	Name           string    // The pharmacy's public display name.
	DigitalAddress string    // The pharmacy's digital/postal address.
	Latitude       float64   // Geographic latitude of the storefront.
	Longitude      float64   // Geographic longitude of the storefront.
	FlyerURL       string    // Durable URL of the storefront flyer image in object storage.
	CreatedAt      time.Time // Timestamp of when this pharmacy was registered.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
