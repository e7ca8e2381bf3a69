package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/domain/service"
	"medifind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the bearer token and re-resolves its subject against
// the user store. A token whose account has been deleted is rejected even
// when the signature and expiry are still valid.
func (srv *authService) Authenticate(ctx context.Context, bearerToken string) (*entity.User, error) {
	tokenString := strings.TrimSpace(bearerToken)
	if tokenString == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
	}

	claims, err := srv.tokenService.Verify(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.Any("userID", claims.UserID))

			return nil, domainerrors.ErrUnauthenticated.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	// The role claim is advisory only; the stored role wins if they drift.
	if user.Role != claims.Role {
		srv.log(ctx).Warn("Token role drifted from stored role", slog.Any("userID", user.ID))
	}

	return user, nil
}
