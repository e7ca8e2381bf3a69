package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pharmacyServiceFixtures holds all test dependencies for pharmacy service tests.
type pharmacyServiceFixtures struct {
	service      usecase.PharmacyUsecase
	pharmacyRepo *mockRepo.MockPharmacyRepository
	medicineRepo *mockRepo.MockMedicineRepository
	savedRepo    *mockRepo.MockSavedPharmacyRepository
}

func createTestPharmacyService(t *testing.T) pharmacyServiceFixtures {
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	savedRepo := mockRepo.NewMockSavedPharmacyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPharmacyService(PharmacyServiceParams{
		PharmacyRepo: pharmacyRepo,
		MedicineRepo: medicineRepo,
		SavedRepo:    savedRepo,
		Logger:       logger,
	})

	return pharmacyServiceFixtures{
		service:      service,
		pharmacyRepo: pharmacyRepo,
		medicineRepo: medicineRepo,
		savedRepo:    savedRepo,
	}
}

func TestPharmacyService_Browse_PassesFilter(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	listed := []*entity.Pharmacy{{ID: uuid.New(), Name: "Sunrise Pharmacy"}}

	fx.pharmacyRepo.EXPECT().
		List(ctx, repository.PharmacyFilter{Name: "sunrise", Location: "accra"}).
		Return(listed, nil)

	pharmacies, err := fx.service.Browse(ctx, &usecase.BrowsePharmaciesInput{
		Name:     "sunrise",
		Location: "accra",
	})

	require.NoError(t, err)
	assert.Equal(t, listed, pharmacies)
}

func TestPharmacyService_Get_NotFound(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(nil, repository.ErrPharmacyNotFound)

	pharmacy, err := fx.service.Get(ctx, pharmacyID)

	require.Error(t, err)
	assert.Nil(t, pharmacy)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}

func TestPharmacyService_SearchMedicines_JoinsSellingPharmacy(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: pharmacyID, Name: "Sunrise Pharmacy"}
	found := []*entity.Medicine{
		{ID: uuid.New(), PharmacyID: pharmacyID, Name: "Paracetamol 500mg", Quantity: 3},
		{ID: uuid.New(), PharmacyID: pharmacyID, Name: "Paracetamol syrup", Quantity: 5},
	}

	fx.medicineRepo.EXPECT().
		Search(ctx, repository.MedicineFilter{
			Name:        "para",
			Category:    "Analgesic",
			PharmacyID:  &pharmacyID,
			InStockOnly: true,
		}).
		Return(found, nil)
	// Both hits belong to the same pharmacy; it is resolved once.
	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(pharmacy, nil).
		Once()

	results, err := fx.service.SearchMedicines(ctx, &usecase.SearchMedicinesInput{
		Name:        "para",
		Category:    "Analgesic",
		PharmacyID:  &pharmacyID,
		InStockOnly: true,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, found[0], results[0].Medicine)
	assert.Equal(t, pharmacy, results[0].Pharmacy)
	assert.Equal(t, pharmacy, results[1].Pharmacy)
}

func TestPharmacyService_GetMedicine_JoinsSellingPharmacy(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()
	medicine := &entity.Medicine{ID: uuid.New(), PharmacyID: pharmacyID, Name: "Ibuprofen 200mg"}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)
	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, Name: "Sunrise Pharmacy"}, nil)

	detail, err := fx.service.GetMedicine(ctx, medicine.ID)

	require.NoError(t, err)
	assert.Equal(t, medicine, detail.Medicine)
	assert.Equal(t, pharmacyID, detail.Pharmacy.ID)
}

func TestPharmacyService_GetMedicine_NotFound(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	medicineID := uuid.New()

	fx.medicineRepo.EXPECT().
		FindByID(ctx, medicineID).
		Return(nil, repository.ErrMedicineNotFound)

	detail, err := fx.service.GetMedicine(ctx, medicineID)

	require.Error(t, err)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestPharmacyService_Counts(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()

	fx.pharmacyRepo.EXPECT().
		List(ctx, repository.PharmacyFilter{}).
		Return([]*entity.Pharmacy{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	fx.medicineRepo.EXPECT().CountAll(ctx).Return(int64(17), nil)

	counts, err := fx.service.Counts(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Pharmacies)
	assert.Equal(t, int64(17), counts.Medicines)
}

func TestPharmacyService_MedicineCount_UnknownPharmacy(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(nil, repository.ErrPharmacyNotFound)

	count, err := fx.service.MedicineCount(ctx, pharmacyID)

	require.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}

func TestPharmacyService_MedicineCount_Success(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	fx.medicineRepo.EXPECT().CountByPharmacy(ctx, pharmacyID).Return(int64(9), nil)

	count, err := fx.service.MedicineCount(ctx, pharmacyID)

	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
}

func TestPharmacyService_SavePharmacy_Success(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	fx.savedRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SavedPharmacy")).
		Run(func(ctx context.Context, saved *entity.SavedPharmacy) {
			assert.Equal(t, userID, saved.UserID)
			assert.Equal(t, pharmacyID, saved.PharmacyID)
		}).
		Return(nil)

	err := fx.service.SavePharmacy(ctx, userID, pharmacyID)

	require.NoError(t, err)
}

func TestPharmacyService_SavePharmacy_AlreadySaved(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	fx.savedRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SavedPharmacy")).
		Return(repository.ErrDuplicateSavedPharmacy)

	err := fx.service.SavePharmacy(ctx, userID, pharmacyID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyAlreadySaved))
}

func TestPharmacyService_UnsavePharmacy_NotSaved(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()

	fx.savedRepo.EXPECT().
		Delete(ctx, userID, pharmacyID).
		Return(repository.ErrSavedPharmacyNotFound)

	err := fx.service.UnsavePharmacy(ctx, userID, pharmacyID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSavedPharmacyNotFound))
}

func TestPharmacyService_ListSaved_SkipsStaleEntries(t *testing.T) {
	fx := createTestPharmacyService(t)

	ctx := context.Background()
	userID := uuid.New()
	liveID := uuid.New()
	staleID := uuid.New()

	fx.savedRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.SavedPharmacy{
			{UserID: userID, PharmacyID: liveID, SavedAt: time.Now()},
			{UserID: userID, PharmacyID: staleID, SavedAt: time.Now().Add(-time.Hour)},
		}, nil)
	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, liveID).
		Return(&entity.Pharmacy{ID: liveID, Name: "Sunrise Pharmacy"}, nil)
	// The second pharmacy was deleted after being saved.
	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, staleID).
		Return(nil, repository.ErrPharmacyNotFound)

	saved, err := fx.service.ListSaved(ctx, userID)

	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, liveID, saved[0].Pharmacy.ID)
}
