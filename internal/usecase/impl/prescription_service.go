package impl

import (
	"context"
	"log/slog"
	"path"
	"time"

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

// prescriptionContentTypes is the upload whitelist. Checked before any bytes
// reach the storage backend.
var prescriptionContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// prescriptionService implements the PrescriptionUsecase interface.
type prescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	pharmacyRepo     repository.PharmacyRepository
	fileStorage      service.FileStorage
	logger           *slog.Logger
}

// PrescriptionServiceParams holds dependencies for PrescriptionService, injected by Fx.
type PrescriptionServiceParams struct {
	fx.In

	PrescriptionRepo repository.PrescriptionRepository
	PharmacyRepo     repository.PharmacyRepository
	FileStorage      service.FileStorage
	Logger           *slog.Logger
}

// NewPrescriptionService is the constructor for prescriptionService.
func NewPrescriptionService(params PrescriptionServiceParams) usecase.PrescriptionUsecase {
	return &prescriptionService{
		prescriptionRepo: params.PrescriptionRepo,
		pharmacyRepo:     params.PharmacyRepo,
		fileStorage:      params.FileStorage,
		logger:           params.Logger,
	}
}

func (srv *prescriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the prescription file and records it for the target pharmacy.
func (srv *prescriptionService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadPrescriptionInput) (*entity.Prescription, error) {
	ext, ok := prescriptionContentTypes[input.ContentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage("content type " + input.ContentType + " not accepted")
	}

	if _, err := srv.pharmacyRepo.FindByID(ctx, input.PharmacyID); err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve prescription target")
	}

	key := path.Join("prescriptions", userID.String(), uuid.New().String()+ext)
	fileURL, err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Prescription upload failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("storage backend rejected the file")
	}

	prescription := &entity.Prescription{
		UserID:     userID,
		PharmacyID: input.PharmacyID,
		Title:      input.Title,
		Notes:      input.Notes,
		FileURL:    fileURL,
		UploadedAt: time.Now(),
	}

	if err := srv.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, errors.Wrap(err, "failed to record prescription")
	}

	srv.log(ctx).Info("Prescription uploaded", slog.Any("userID", userID), slog.Any("pharmacyID", input.PharmacyID))

	return prescription, nil
}

// Get retrieves one prescription, visible only to its uploader and the
// target pharmacy. Anyone else's lookup reads as not-found.
func (srv *prescriptionService) Get(ctx context.Context, callerID, prescriptionID uuid.UUID) (*entity.Prescription, error) {
	prescription, err := srv.prescriptionRepo.FindByID(ctx, prescriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return nil, domainerrors.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to get prescription")
	}

	if prescription.UserID == callerID {
		return prescription, nil
	}

	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	if prescription.PharmacyID != pharmacy.ID {
		return nil, domainerrors.ErrPrescriptionNotFound
	}

	return prescription, nil
}

// ListMine retrieves the caller's own uploads, newest first.
func (srv *prescriptionService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error) {
	prescriptions, err := srv.prescriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own prescriptions")
	}

	return prescriptions, nil
}

// ListForPharmacy retrieves prescriptions addressed to the caller's pharmacy.
func (srv *prescriptionService) ListForPharmacy(ctx context.Context, pharmacyUserID uuid.UUID) ([]*entity.Prescription, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	prescriptions, err := srv.prescriptionRepo.FindByPharmacy(ctx, pharmacy.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list received prescriptions")
	}

	return prescriptions, nil
}

// MarkRead flags one received prescription as read.
func (srv *prescriptionService) MarkRead(ctx context.Context, pharmacyUserID, prescriptionID uuid.UUID) error {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return errors.Wrap(err, "failed to resolve own pharmacy")
	}

	if err := srv.prescriptionRepo.MarkRead(ctx, prescriptionID, pharmacy.ID); err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return domainerrors.ErrPrescriptionNotFound
		}

		return errors.Wrap(err, "failed to mark prescription read")
	}

	return nil
}
