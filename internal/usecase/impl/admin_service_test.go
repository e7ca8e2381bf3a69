package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	userRepo     *mockRepo.MockUserRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		UserRepo:     userRepo,
		PharmacyRepo: pharmacyRepo,
		Logger:       logger,
	})

	return adminServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

func TestAdminService_ListUsers_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Role: entity.RolePatient},
		{ID: uuid.New(), Role: entity.RolePharmacy},
	}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	listed, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, listed)
}

func TestAdminService_ListPharmacies_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	pharmacies := []*entity.Pharmacy{
		{ID: uuid.New(), Name: "Sunrise Pharmacy"},
		{ID: uuid.New(), Name: "City Meds"},
	}

	fx.pharmacyRepo.EXPECT().List(ctx, repository.PharmacyFilter{}).Return(pharmacies, nil)

	listed, err := fx.service.ListPharmacies(ctx)

	require.NoError(t, err)
	assert.Equal(t, pharmacies, listed)
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		Delete(ctx, userID).
		Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
