package usecase

import (
	"context"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines platform administration operations.
type AdminUsecase interface {
	// ListUsers retrieves every account on the platform.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// ListPharmacies retrieves every pharmacy profile on the platform.
	ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error)

	// DeleteUser removes an account. Tokens issued to the account stop
	// working immediately because authentication re-resolves the subject.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
