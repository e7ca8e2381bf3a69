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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	userRepo     *mockRepo.MockUserRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
	fileStorage  *mockSvc.MockFileStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo:     userRepo,
		PharmacyRepo: pharmacyRepo,
		FileStorage:  fileStorage,
		Logger:       logger,
	})

	return profileServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		pharmacyRepo: pharmacyRepo,
		fileStorage:  fileStorage,
	}
}

func TestProfileService_GetProfile_Patient(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RolePatient}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Nil(t, output.Pharmacy)
}

func TestProfileService_GetProfile_PharmacyIncludesProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RolePharmacy}
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID, Name: "Sunrise Pharmacy"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output.Pharmacy)
	assert.Equal(t, "Sunrise Pharmacy", output.Pharmacy.Name)
}

func TestProfileService_UpdatePharmacyProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID, Name: "Old Name"}
	input := &usecase.UpdatePharmacyProfileInput{
		Name:           "New Name",
		DigitalAddress: "GA-184-3321",
		Latitude:       5.6037,
		Longitude:      -0.187,
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.pharmacyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Run(func(ctx context.Context, updated *entity.Pharmacy) {
			assert.Equal(t, "New Name", updated.Name)
		}).
		Return(nil)

	updated, err := fx.service.UpdatePharmacyProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, input.DigitalAddress, updated.DigitalAddress)
}

func TestProfileService_UploadFlyer_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: userID}
	content := strings.NewReader("fake image bytes")

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, userID).Return(pharmacy, nil)
	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", content).
		Run(func(ctx context.Context, key, contentType string, content io.Reader) {
			assert.True(t, strings.HasPrefix(key, "flyers/"+pharmacy.ID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".jpg"))
		}).
		Return("https://cdn.example.com/flyers/abc.jpg", nil)
	fx.pharmacyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Return(nil)

	updated, err := fx.service.UploadFlyer(ctx, userID, &usecase.UploadFlyerInput{
		FileName:    "flyer.jpg",
		ContentType: "image/jpeg",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/flyers/abc.jpg", updated.FlyerURL)
}

func TestProfileService_UploadFlyer_RejectsPDF(t *testing.T) {
	fx := createTestProfileService(t)

	// PDFs are valid prescriptions but not valid flyers.
	updated, err := fx.service.UploadFlyer(context.Background(), uuid.New(), &usecase.UploadFlyerInput{
		FileName:    "flyer.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestProfileService_UpdatePharmacyProfile_NoPharmacyProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrPharmacyNotFound)

	updated, err := fx.service.UpdatePharmacyProfile(ctx, userID, &usecase.UpdatePharmacyProfileInput{Name: "X"})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}
