package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no active cart.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartConflict is returned when a concurrent writer changed the cart
// between read and save.
var ErrCartConflict = errors.New("cart modified concurrently")

// CartRepository defines the standard operations for cart persistence.
// A user holds at most one cart at a time.
type CartRepository interface {
	// FindByUserID retrieves the user's active cart.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserIDForUpdate retrieves the user's active cart while holding
	// a row lock for the duration of the surrounding transaction. Callers
	// must only use it inside TransactionManager.Execute.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save upserts the cart and bumps its version. Returns ErrCartConflict
	// when the stored version no longer matches the one read.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the user's cart. Returns ErrCartNotFound when no
	// record matched.
	Delete(ctx context.Context, userID uuid.UUID) error
}
