package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/domain/service"
	mockRepo "medifind/internal/mocks/repository"
	mockSvc "medifind/internal/mocks/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RolePatient}

	fx.tokenService.EXPECT().
		Verify("valid.jwt.token").
		Return(&service.Claims{UserID: userID, Role: entity.RolePatient}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	resolved, err := fx.service.Authenticate(ctx, "valid.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, userID, resolved.ID)
}

func TestAuthService_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAuthService(t)

	resolved, err := fx.service.Authenticate(context.Background(), "   ")

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		Verify("garbage").
		Return(nil, service.ErrTokenInvalid)

	resolved, err := fx.service.Authenticate(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Authenticate_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Verify("valid.jwt.token").
		Return(&service.Claims{UserID: userID, Role: entity.RolePatient}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	// A structurally valid token whose subject was deleted must be rejected.
	resolved, err := fx.service.Authenticate(ctx, "valid.jwt.token")

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Authenticate_RoleDriftUsesStoredRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RolePatient}

	// The token still claims the pharmacy role; the stored role wins.
	fx.tokenService.EXPECT().
		Verify("stale.jwt.token").
		Return(&service.Claims{UserID: userID, Role: entity.RolePharmacy}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	resolved, err := fx.service.Authenticate(ctx, "stale.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, entity.RolePatient, resolved.Role)
}
