package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	mockSvc "medifind/internal/mocks/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service      usecase.InventoryUsecase
	medicineRepo *mockRepo.MockMedicineRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
	fileStorage  *mockSvc.MockFileStorage
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInventoryService(InventoryServiceParams{
		MedicineRepo: medicineRepo,
		PharmacyRepo: pharmacyRepo,
		FileStorage:  fileStorage,
		Logger:       logger,
	})

	return inventoryServiceFixtures{
		service:      service,
		medicineRepo: medicineRepo,
		pharmacyRepo: pharmacyRepo,
		fileStorage:  fileStorage,
	}
}

func TestInventoryService_AddMedicine_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	input := &usecase.MedicineInput{
		Name:     "Paracetamol 500mg",
		Quantity: 100,
		Price:    5.50,
		Category: "Analgesic",
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(ctx context.Context, medicine *entity.Medicine) {
			medicine.ID = uuid.New()
		}).
		Return(nil)

	medicine, err := fx.service.AddMedicine(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, pharmacy.ID, medicine.PharmacyID)
	assert.Equal(t, input.Name, medicine.Name)
	assert.True(t, medicine.InStock())
}

func TestInventoryService_AddMedicine_DuplicateName(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(repository.ErrDuplicateMedicine)

	medicine, err := fx.service.AddMedicine(ctx, userID, &usecase.MedicineInput{Name: "Paracetamol 500mg"})

	require.Error(t, err)
	assert.Nil(t, medicine)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineAlreadyExists))
}

func TestInventoryService_AddMedicine_NoPharmacyProfile(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrPharmacyNotFound)

	medicine, err := fx.service.AddMedicine(ctx, userID, &usecase.MedicineInput{Name: "Ibuprofen"})

	require.Error(t, err)
	assert.Nil(t, medicine)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}

func TestInventoryService_GetMedicine_ScopedToOwnPharmacy(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	medicineID := uuid.New()

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	// The item exists but belongs to another pharmacy, so the scoped lookup misses.
	fx.medicineRepo.EXPECT().
		FindByPharmacyAndID(ctx, pharmacy.ID, medicineID).
		Return(nil, repository.ErrMedicineNotFound)

	medicine, err := fx.service.GetMedicine(ctx, userID, medicineID)

	require.Error(t, err)
	assert.Nil(t, medicine)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestInventoryService_UpdateMedicine_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	medicineID := uuid.New()
	input := &usecase.MedicineInput{Name: "Paracetamol 500mg", Quantity: 40, Price: 6.0}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		Replace(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(ctx context.Context, medicine *entity.Medicine) {
			assert.Equal(t, medicineID, medicine.ID)
			assert.Equal(t, pharmacy.ID, medicine.PharmacyID)
		}).
		Return(nil)
	fx.medicineRepo.EXPECT().
		FindByPharmacyAndID(ctx, pharmacy.ID, medicineID).
		Return(&entity.Medicine{ID: medicineID, PharmacyID: pharmacy.ID, Name: input.Name, Quantity: 40}, nil)

	medicine, err := fx.service.UpdateMedicine(ctx, userID, medicineID, input)

	require.NoError(t, err)
	assert.Equal(t, 40, medicine.Quantity)
}

func TestInventoryService_DeleteMedicine_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	medicineID := uuid.New()

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		Delete(ctx, pharmacy.ID, medicineID).
		Return(repository.ErrMedicineNotFound)

	err := fx.service.DeleteMedicine(ctx, userID, medicineID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestInventoryService_ListStock_PassesFilter(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	stock := []*entity.Medicine{{ID: uuid.New(), PharmacyID: pharmacy.ID, Name: "Paracetamol 500mg"}}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		FindByPharmacy(ctx, pharmacy.ID, "para", 20, 0).
		Return(stock, nil)

	medicines, err := fx.service.ListStock(ctx, userID, &usecase.ListStockInput{Query: "para", Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, stock, medicines)
}

func TestInventoryService_UploadMedicineImage_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	medicine := &entity.Medicine{ID: uuid.New(), PharmacyID: pharmacy.ID, Name: "Ibuprofen 200mg"}
	content := strings.NewReader("fake image bytes")

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.medicineRepo.EXPECT().
		FindByPharmacyAndID(ctx, pharmacy.ID, medicine.ID).
		Return(medicine, nil)
	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", content).
		Run(func(ctx context.Context, key, contentType string, content io.Reader) {
			assert.True(t, strings.HasPrefix(key, "medicines/"+pharmacy.ID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
		}).
		Return("https://cdn.example.com/medicines/abc.png", nil)
	fx.medicineRepo.EXPECT().
		Replace(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(nil)

	updated, err := fx.service.UploadMedicineImage(ctx, userID, medicine.ID, &usecase.UploadMedicineImageInput{
		FileName:    "ibuprofen.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/medicines/abc.png", updated.ImageURL)
}

func TestInventoryService_UploadMedicineImage_RejectsPDF(t *testing.T) {
	fx := createTestInventoryService(t)

	// No storage or repository calls may happen for a rejected type.
	updated, err := fx.service.UploadMedicineImage(context.Background(), uuid.New(), uuid.New(), &usecase.UploadMedicineImageInput{
		FileName:    "ibuprofen.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4 fake"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}
