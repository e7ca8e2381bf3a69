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

// productImageContentTypes is the accepted product image upload whitelist.
var productImageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	medicineRepo repository.MedicineRepository
	pharmacyRepo repository.PharmacyRepository
	fileStorage  service.FileStorage
	logger       *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	PharmacyRepo repository.PharmacyRepository
	FileStorage  service.FileStorage
	Logger       *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		medicineRepo: params.MedicineRepo,
		pharmacyRepo: params.PharmacyRepo,
		fileStorage:  params.FileStorage,
		logger:       params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ownPharmacy resolves the pharmacy owned by the calling account.
func (srv *inventoryService) ownPharmacy(ctx context.Context, userID uuid.UUID) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	return pharmacy, nil
}

// AddMedicine creates a new inventory item for the caller's pharmacy.
func (srv *inventoryService) AddMedicine(ctx context.Context, userID uuid.UUID, input *usecase.MedicineInput) (*entity.Medicine, error) {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		PharmacyID:  pharmacy.ID,
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrDuplicateMedicine) {
			return nil, domainerrors.ErrMedicineAlreadyExists.WrapMessage("medicine name already stocked")
		}

		return nil, errors.Wrap(err, "failed to add medicine")
	}

	srv.log(ctx).Info("Medicine added", slog.Any("pharmacyID", pharmacy.ID), slog.Any("medicineID", medicine.ID))

	return medicine, nil
}

// ListStock retrieves the caller's stock with optional name filtering.
func (srv *inventoryService) ListStock(ctx context.Context, userID uuid.UUID, input *usecase.ListStockInput) ([]*entity.Medicine, error) {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	medicines, err := srv.medicineRepo.FindByPharmacy(ctx, pharmacy.ID, input.Query, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock")
	}

	return medicines, nil
}

// GetMedicine retrieves one of the caller's items.
func (srv *inventoryService) GetMedicine(ctx context.Context, userID, medicineID uuid.UUID) (*entity.Medicine, error) {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	medicine, err := srv.medicineRepo.FindByPharmacyAndID(ctx, pharmacy.ID, medicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to get medicine")
	}

	return medicine, nil
}

// UpdateMedicine fully replaces one of the caller's items.
func (srv *inventoryService) UpdateMedicine(ctx context.Context, userID, medicineID uuid.UUID, input *usecase.MedicineInput) (*entity.Medicine, error) {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		ID:          medicineID,
		PharmacyID:  pharmacy.ID,
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := srv.medicineRepo.Replace(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}
		if errors.Is(err, repository.ErrDuplicateMedicine) {
			return nil, domainerrors.ErrMedicineAlreadyExists.WrapMessage("medicine name already stocked")
		}

		return nil, errors.Wrap(err, "failed to update medicine")
	}

	return srv.medicineRepo.FindByPharmacyAndID(ctx, pharmacy.ID, medicineID)
}

// UploadMedicineImage stores a product image for one of the caller's items
// and records its durable URL.
func (srv *inventoryService) UploadMedicineImage(ctx context.Context, userID, medicineID uuid.UUID, input *usecase.UploadMedicineImageInput) (*entity.Medicine, error) {
	ext, ok := productImageContentTypes[input.ContentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage("content type " + input.ContentType + " not accepted")
	}

	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}

	medicine, err := srv.medicineRepo.FindByPharmacyAndID(ctx, pharmacy.ID, medicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve medicine")
	}

	key := path.Join("medicines", pharmacy.ID.String(), uuid.New().String()+ext)
	imageURL, err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Product image upload failed", slog.Any("medicineID", medicineID), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("storage backend rejected the file")
	}

	medicine.ImageURL = imageURL
	if err := srv.medicineRepo.Replace(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to record product image")
	}

	return medicine, nil
}

// DeleteMedicine removes one of the caller's items.
func (srv *inventoryService) DeleteMedicine(ctx context.Context, userID, medicineID uuid.UUID) error {
	pharmacy, err := srv.ownPharmacy(ctx, userID)
	if err != nil {
		return err
	}

	if err := srv.medicineRepo.Delete(ctx, pharmacy.ID, medicineID); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound
		}

		return errors.Wrap(err, "failed to delete medicine")
	}

	srv.log(ctx).Info("Medicine deleted", slog.Any("pharmacyID", pharmacy.ID), slog.Any("medicineID", medicineID))

	return nil
}
