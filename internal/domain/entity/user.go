// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, shared across all roles.
// The PasswordHash field never leaves the service boundary; delivery-layer
// views of a user must be built through a DTO that omits it.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier, unique across all users.
	Username     string    // The user's display name.
	Phone        string    // Contact phone number.
	PasswordHash string    // The bcrypt-hashed password.
	Role         Role      // The single role this account carries (admin, pharmacy or patient).
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// IsPharmacy reports whether this account operates a pharmacy.
func (u *User) IsPharmacy() bool {
	return u.Role == RolePharmacy
}
