package impl

import (
	"context"
	"log/slog"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo     repository.UserRepository
	pharmacyRepo repository.PharmacyRepository
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PharmacyRepo repository.PharmacyRepository
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:     params.UserRepo,
		pharmacyRepo: params.PharmacyRepo,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves every account on the platform.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListPharmacies retrieves every pharmacy profile on the platform.
func (srv *adminService) ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	pharmacies, err := srv.pharmacyRepo.List(ctx, repository.PharmacyFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	return pharmacies, nil
}

// DeleteUser removes an account. Authentication re-resolves token subjects,
// so the deleted account's outstanding tokens stop working on the next
// request.
func (srv *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted by admin", slog.Any("userID", id))

	return nil
}
