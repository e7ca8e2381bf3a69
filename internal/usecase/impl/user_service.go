// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"medifind/config"
	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/domain/service"
	"medifind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new patient or admin account. The role defaults to
// patient when the input leaves it empty; input validation rejects any value
// outside {patient, admin} before this runs.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterOutput, error) {
	role := entity.RolePatient
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	newUser, err := srv.buildAccount(ctx, input.Username, input.Email, input.Phone, input.Password, role)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// RegisterPharmacy creates a pharmacy account together with its pharmacy
// profile. The two inserts run in one transaction so a failure in either
// leaves no partial account behind.
func (srv *userService) RegisterPharmacy(ctx context.Context, input *usecase.RegisterPharmacyInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", entity.RolePharmacy), slog.String("email", input.Email))

	newUser, err := srv.buildAccount(ctx, input.Username, input.Email, input.Phone, input.Password, entity.RolePharmacy)
	if err != nil {
		return nil, err
	}

	var newPharmacy *entity.Pharmacy
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create pharmacy account")
		}

		newPharmacy = &entity.Pharmacy{
			UserID:         newUser.ID,
			Name:           input.PharmacyName,
			DigitalAddress: input.DigitalAddress,
			Latitude:       input.Latitude,
			Longitude:      input.Longitude,
		}

		if err := repoFactory.PharmacyRepo().Create(ctx, newPharmacy); err != nil {
			return errors.Wrap(err, "failed to create pharmacy profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute pharmacy registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", entity.RolePharmacy), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser, Pharmacy: newPharmacy}, nil
}

// Login checks the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so probing for registered
			// emails yields nothing.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// buildAccount hashes the password and assembles an unsaved user entity.
func (srv *userService) buildAccount(ctx context.Context, username, email, phone, password string, role entity.Role) (*entity.User, error) {
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", role), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	return &entity.User{
		Email:        normalizeEmail(email),
		Username:     username,
		Phone:        phone,
		PasswordHash: hashed,
		Role:         role,
	}, nil
}

// normalizeEmail lower-cases and trims the address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
