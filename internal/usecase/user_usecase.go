// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medifind/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a patient or
// admin account. Role defaults to patient when omitted; pharmacy accounts go
// through RegisterPharmacyInput because they carry a profile.
type RegisterAccountInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=30"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=patient admin"`
}

// RegisterPharmacyInput defines the data required to register a pharmacy
// account together with its pharmacy profile.
type RegisterPharmacyInput struct {
	Username       string  `json:"username" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"max=30"`
	Password       string  `json:"password" validate:"required,min=8"`
	PharmacyName   string  `json:"pharmacy_name" validate:"required,max=255"`
	DigitalAddress string  `json:"digital_address" validate:"required,max=100"`
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
}

// LoginInput defines the data required for any account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
// Pharmacy is nil for patient registrations.
type RegisterOutput struct {
	User     *entity.User
	Pharmacy *entity.Pharmacy
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterAccountInput) (*RegisterOutput, error)
	RegisterPharmacy(ctx context.Context, input *RegisterPharmacyInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
