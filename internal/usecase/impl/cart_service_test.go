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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service      usecase.CartUsecase
	txManager    *mockRepo.MockTransactionManager
	cartRepo     *mockRepo.MockCartRepository
	medicineRepo *mockRepo.MockMedicineRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCartService(CartServiceParams{
		TxManager:    txManager,
		CartRepo:     cartRepo,
		MedicineRepo: medicineRepo,
		PharmacyRepo: pharmacyRepo,
		Logger:       logger,
	})

	return cartServiceFixtures{
		service:      service,
		txManager:    txManager,
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

// expectTransaction routes Execute through a factory backed by the given cart repo.
func (fx cartServiceFixtures) expectTransaction(t *testing.T, ctx context.Context, txCartRepo *mockRepo.MockCartRepository) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().CartRepo().Return(txCartRepo)

			return fn(mockFactory)
		})
}

func TestCartService_AddItem_CreatesCartOnFirstAdd(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()
	medicine := &entity.Medicine{
		ID:         uuid.New(),
		PharmacyID: pharmacyID,
		Name:       "Paracetamol 500mg",
		Quantity:   20,
		Price:      5.50,
	}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(nil, repository.ErrCartNotFound)
	txCartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			assert.Equal(t, pharmacyID, cart.PharmacyID)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, 2, cart.Items[0].Quantity)
		}).
		Return(nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	// The read-back after the mutation prices the cart.
	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: pharmacyID,
			Items:      []entity.CartItem{{MedicineID: medicine.ID, Quantity: 2}},
		}, nil)
	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, Name: "Sunrise Pharmacy"}, nil)
	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	output, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		MedicineID: medicine.ID,
		Quantity:   2,
	})

	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, "Sunrise Pharmacy", output.PharmacyName)
	assert.InDelta(t, 11.0, output.Total, 0.001)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()
	medicine := &entity.Medicine{ID: uuid.New(), PharmacyID: pharmacyID, Price: 3.0, Quantity: 50}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: pharmacyID,
			Items:      []entity.CartItem{{MedicineID: medicine.ID, Quantity: 1}},
		}, nil)
	txCartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			require.Len(t, cart.Items, 1)
			assert.Equal(t, 4, cart.Items[0].Quantity)
		}).
		Return(nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: pharmacyID,
			Items:      []entity.CartItem{{MedicineID: medicine.ID, Quantity: 4}},
		}, nil)
	fx.pharmacyRepo.EXPECT().FindByID(ctx, pharmacyID).Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	output, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		MedicineID: medicine.ID,
		Quantity:   3,
	})

	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, 4, output.Lines[0].Quantity)
}

func TestCartService_AddItem_RejectsSecondPharmacy(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicine := &entity.Medicine{ID: uuid.New(), PharmacyID: uuid.New(), Quantity: 10}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: uuid.New(), // a different pharmacy
			Items:      []entity.CartItem{{MedicineID: uuid.New(), Quantity: 1}},
		}, nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	output, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		MedicineID: medicine.ID,
		Quantity:   1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartPharmacyMismatch))
}

func TestCartService_AddItem_ConcurrentWriteConflict(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicine := &entity.Medicine{
		ID:         uuid.New(),
		PharmacyID: uuid.New(),
		Name:       "Ibuprofen 200mg",
		Quantity:   10,
		Price:      3.00,
	}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicine.ID).Return(medicine, nil)

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(nil, repository.ErrCartNotFound)
	txCartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(repository.ErrCartConflict)
	fx.expectTransaction(t, ctx, txCartRepo)

	output, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		MedicineID: medicine.ID,
		Quantity:   1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartConflict))
}

func TestCartService_GetCart_SkipsDelistedMedicines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()
	keptID := uuid.New()
	delistedID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: pharmacyID,
			Items: []entity.CartItem{
				{MedicineID: keptID, Quantity: 2},
				{MedicineID: delistedID, Quantity: 1},
			},
		}, nil)
	fx.pharmacyRepo.EXPECT().FindByID(ctx, pharmacyID).Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	fx.medicineRepo.EXPECT().
		FindByID(ctx, keptID).
		Return(&entity.Medicine{ID: keptID, PharmacyID: pharmacyID, Price: 2.5}, nil)
	fx.medicineRepo.EXPECT().
		FindByID(ctx, delistedID).
		Return(nil, repository.ErrMedicineNotFound)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, keptID, output.Lines[0].MedicineID)
	assert.InDelta(t, 5.0, output.Total, 0.001)
}

func TestCartService_GetCart_EmptyWhenNoCartRecord(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Empty(t, output.Lines)
	assert.Zero(t, output.Total)
}

func TestCartService_UpdateItem_MedicineNotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: uuid.New(),
			Items:      []entity.CartItem{{MedicineID: uuid.New(), Quantity: 1}},
		}, nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	output, err := fx.service.UpdateItem(ctx, userID, medicineID, &usecase.UpdateCartItemInput{Quantity: 5})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestCartService_RemoveItem_LastLineDeletesCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: uuid.New(),
			Items:      []entity.CartItem{{MedicineID: medicineID, Quantity: 3}},
		}, nil)
	txCartRepo.EXPECT().Delete(ctx, userID).Return(nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	err := fx.service.RemoveItem(ctx, userID, medicineID)

	require.NoError(t, err)
}

func TestCartService_RemoveItem_KeepsRemainingLines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	removedID := uuid.New()
	keptID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		FindByUserIDForUpdate(ctx, userID).
		Return(&entity.Cart{
			UserID:     userID,
			PharmacyID: uuid.New(),
			Items: []entity.CartItem{
				{MedicineID: removedID, Quantity: 1},
				{MedicineID: keptID, Quantity: 2},
			},
		}, nil)
	txCartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			require.Len(t, cart.Items, 1)
			assert.Equal(t, keptID, cart.Items[0].MedicineID)
		}).
		Return(nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	err := fx.service.RemoveItem(ctx, userID, removedID)

	require.NoError(t, err)
}

func TestCartService_Clear_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().Delete(ctx, userID).Return(nil)
	fx.expectTransaction(t, ctx, txCartRepo)

	err := fx.service.Clear(ctx, userID)

	require.NoError(t, err)
}
