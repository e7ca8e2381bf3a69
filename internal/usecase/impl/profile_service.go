package impl

import (
	"context"
	"log/slog"
	"path"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/domain/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// flyerContentTypes is the accepted flyer upload whitelist.
var flyerContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo     repository.UserRepository
	pharmacyRepo repository.PharmacyRepository
	fileStorage  service.FileStorage
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PharmacyRepo repository.PharmacyRepository
	FileStorage  service.FileStorage
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:     params.UserRepo,
		pharmacyRepo: params.PharmacyRepo,
		fileStorage:  params.FileStorage,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account and, for pharmacy accounts, the
// owned pharmacy profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	output := &usecase.ProfileOutput{User: user}
	if user.IsPharmacy() {
		pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, errors.Wrap(err, "failed to load pharmacy profile")
		}
		output.Pharmacy = pharmacy
	}

	return output, nil
}

// UpdatePharmacyProfile replaces the mutable fields of the caller's pharmacy
// profile.
func (srv *profileService) UpdatePharmacyProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePharmacyProfileInput) (*entity.Pharmacy, error) {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	pharmacy.Name = input.Name
	pharmacy.DigitalAddress = input.DigitalAddress
	pharmacy.Latitude = input.Latitude
	pharmacy.Longitude = input.Longitude

	if err := srv.pharmacyRepo.Update(ctx, pharmacy); err != nil {
		return nil, errors.Wrap(err, "failed to update pharmacy profile")
	}

	srv.log(ctx).Info("Pharmacy profile updated", slog.Any("pharmacyID", pharmacy.ID))

	return pharmacy, nil
}

// UploadFlyer stores a flyer image and records its URL on the caller's
// pharmacy profile.
func (srv *profileService) UploadFlyer(ctx context.Context, userID uuid.UUID, input *usecase.UploadFlyerInput) (*entity.Pharmacy, error) {
	ext, ok := flyerContentTypes[input.ContentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage("content type " + input.ContentType + " not accepted")
	}

	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := path.Join("flyers", pharmacy.ID.String(), uuid.New().String()+ext)
	flyerURL, err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Flyer upload failed", slog.Any("pharmacyID", pharmacy.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("storage backend rejected the file")
	}

	pharmacy.FlyerURL = flyerURL
	if err := srv.pharmacyRepo.Update(ctx, pharmacy); err != nil {
		return nil, errors.Wrap(err, "failed to record flyer URL")
	}

	srv.log(ctx).Info("Flyer uploaded", slog.Any("pharmacyID", pharmacy.ID))

	return pharmacy, nil
}

func (srv *profileService) ownPharmacy(ctx context.Context, userID uuid.UUID) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	return pharmacy, nil
}
