package service

import (
	"errors"

	"medifind/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation errors.
var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned when the token fails signature or
	// structural validation.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed access token for a given user.
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	Verify(tokenString string) (*Claims, error)
}
