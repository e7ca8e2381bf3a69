package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pharmacyService implements the PharmacyUsecase interface.
type pharmacyService struct {
	pharmacyRepo repository.PharmacyRepository
	medicineRepo repository.MedicineRepository
	savedRepo    repository.SavedPharmacyRepository
	logger       *slog.Logger
}

// PharmacyServiceParams holds dependencies for PharmacyService, injected by Fx.
type PharmacyServiceParams struct {
	fx.In

	PharmacyRepo repository.PharmacyRepository
	MedicineRepo repository.MedicineRepository
	SavedRepo    repository.SavedPharmacyRepository
	Logger       *slog.Logger
}

// NewPharmacyService is the constructor for pharmacyService.
func NewPharmacyService(params PharmacyServiceParams) usecase.PharmacyUsecase {
	return &pharmacyService{
		pharmacyRepo: params.PharmacyRepo,
		medicineRepo: params.MedicineRepo,
		savedRepo:    params.SavedRepo,
		logger:       params.Logger,
	}
}

func (srv *pharmacyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse retrieves pharmacies matching the filter.
func (srv *pharmacyService) Browse(ctx context.Context, input *usecase.BrowsePharmaciesInput) ([]*entity.Pharmacy, error) {
	pharmacies, err := srv.pharmacyRepo.List(ctx, repository.PharmacyFilter{
		Name:     input.Name,
		Location: input.Location,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse pharmacies")
	}

	return pharmacies, nil
}

// Get retrieves one pharmacy's public profile.
func (srv *pharmacyService) Get(ctx context.Context, pharmacyID uuid.UUID) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, pharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to get pharmacy")
	}

	return pharmacy, nil
}

// ListMedicines retrieves a pharmacy's public stock.
func (srv *pharmacyService) ListMedicines(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Medicine, error) {
	if _, err := srv.Get(ctx, pharmacyID); err != nil {
		return nil, err
	}

	medicines, err := srv.medicineRepo.FindByPharmacy(ctx, pharmacyID, "", 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacy medicines")
	}

	return medicines, nil
}

// SearchMedicines retrieves medicines across all pharmacies, each joined
// with its selling pharmacy.
func (srv *pharmacyService) SearchMedicines(ctx context.Context, input *usecase.SearchMedicinesInput) ([]*usecase.MedicineDetailOutput, error) {
	medicines, err := srv.medicineRepo.Search(ctx, repository.MedicineFilter{
		Name:        input.Name,
		Category:    input.Category,
		PharmacyID:  input.PharmacyID,
		InStockOnly: input.InStockOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search medicines")
	}

	pharmacies := make(map[uuid.UUID]*entity.Pharmacy)
	outputs := make([]*usecase.MedicineDetailOutput, 0, len(medicines))
	for _, medicine := range medicines {
		pharmacy, ok := pharmacies[medicine.PharmacyID]
		if !ok {
			pharmacy, err = srv.pharmacyRepo.FindByID(ctx, medicine.PharmacyID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to resolve selling pharmacy")
			}
			pharmacies[medicine.PharmacyID] = pharmacy
		}

		outputs = append(outputs, &usecase.MedicineDetailOutput{
			Medicine: medicine,
			Pharmacy: pharmacy,
		})
	}

	return outputs, nil
}

// GetMedicine retrieves one medicine joined with its selling pharmacy.
func (srv *pharmacyService) GetMedicine(ctx context.Context, medicineID uuid.UUID) (*usecase.MedicineDetailOutput, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to get medicine")
	}

	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, medicine.PharmacyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve selling pharmacy")
	}

	return &usecase.MedicineDetailOutput{
		Medicine: medicine,
		Pharmacy: pharmacy,
	}, nil
}

// Counts reports platform-wide totals for the public landing page.
func (srv *pharmacyService) Counts(ctx context.Context) (*usecase.PlatformCountsOutput, error) {
	pharmacies, err := srv.pharmacyRepo.List(ctx, repository.PharmacyFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pharmacies")
	}

	medicines, err := srv.medicineRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count medicines")
	}

	return &usecase.PlatformCountsOutput{
		Pharmacies: int64(len(pharmacies)),
		Medicines:  medicines,
	}, nil
}

// MedicineCount reports how many items one pharmacy stocks.
func (srv *pharmacyService) MedicineCount(ctx context.Context, pharmacyID uuid.UUID) (int64, error) {
	if _, err := srv.Get(ctx, pharmacyID); err != nil {
		return 0, err
	}

	count, err := srv.medicineRepo.CountByPharmacy(ctx, pharmacyID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pharmacy medicines")
	}

	return count, nil
}

// SavePharmacy adds a pharmacy to the caller's saved list.
func (srv *pharmacyService) SavePharmacy(ctx context.Context, userID, pharmacyID uuid.UUID) error {
	if _, err := srv.Get(ctx, pharmacyID); err != nil {
		return err
	}

	saved := &entity.SavedPharmacy{
		UserID:     userID,
		PharmacyID: pharmacyID,
		SavedAt:    time.Now(),
	}

	if err := srv.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicateSavedPharmacy) {
			return domainerrors.ErrPharmacyAlreadySaved
		}

		return errors.Wrap(err, "failed to save pharmacy")
	}

	srv.log(ctx).Debug("Pharmacy saved", slog.Any("userID", userID), slog.Any("pharmacyID", pharmacyID))

	return nil
}

// UnsavePharmacy removes a pharmacy from the caller's saved list.
func (srv *pharmacyService) UnsavePharmacy(ctx context.Context, userID, pharmacyID uuid.UUID) error {
	if err := srv.savedRepo.Delete(ctx, userID, pharmacyID); err != nil {
		if errors.Is(err, repository.ErrSavedPharmacyNotFound) {
			return domainerrors.ErrSavedPharmacyNotFound
		}

		return errors.Wrap(err, "failed to unsave pharmacy")
	}

	return nil
}

// ListSaved retrieves the caller's saved pharmacies, newest first.
func (srv *pharmacyService) ListSaved(ctx context.Context, userID uuid.UUID) ([]*usecase.SavedPharmacyOutput, error) {
	saved, err := srv.savedRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved pharmacies")
	}

	outputs := make([]*usecase.SavedPharmacyOutput, 0, len(saved))
	for _, record := range saved {
		pharmacy, err := srv.pharmacyRepo.FindByID(ctx, record.PharmacyID)
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			// The pharmacy was removed since it was saved; skip the stale entry.
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve saved pharmacy")
		}

		outputs = append(outputs, &usecase.SavedPharmacyOutput{
			Pharmacy: pharmacy,
			Saved:    record,
		})
	}

	return outputs, nil
}
