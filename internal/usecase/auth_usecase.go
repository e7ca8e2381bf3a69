package usecase

import (
	"context"

	"medifind/internal/domain/entity"
)

// AuthUsecase resolves bearer tokens into live accounts.
// Verification alone is not enough: a token stays syntactically valid after
// its account is removed, so the subject is re-checked against the user store
// on every request.
type AuthUsecase interface {
	// Authenticate verifies the bearer token and returns the live account
	// it belongs to. Returns ErrUnauthenticated when the token is missing,
	// malformed, expired, or its subject no longer exists.
	Authenticate(ctx context.Context, bearerToken string) (*entity.User, error)
}
