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

// prescriptionServiceFixtures holds all test dependencies for prescription service tests.
type prescriptionServiceFixtures struct {
	service          usecase.PrescriptionUsecase
	prescriptionRepo *mockRepo.MockPrescriptionRepository
	pharmacyRepo     *mockRepo.MockPharmacyRepository
	fileStorage      *mockSvc.MockFileStorage
}

func createTestPrescriptionService(t *testing.T) prescriptionServiceFixtures {
	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPrescriptionService(PrescriptionServiceParams{
		PrescriptionRepo: prescriptionRepo,
		PharmacyRepo:     pharmacyRepo,
		FileStorage:      fileStorage,
		Logger:           logger,
	})

	return prescriptionServiceFixtures{
		service:          service,
		prescriptionRepo: prescriptionRepo,
		pharmacyRepo:     pharmacyRepo,
		fileStorage:      fileStorage,
	}
}

func TestPrescriptionService_Upload_Success(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()
	content := strings.NewReader("%PDF-1.4 fake")

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)

	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "application/pdf", content).
		Run(func(ctx context.Context, key, contentType string, content io.Reader) {
			assert.True(t, strings.HasPrefix(key, "prescriptions/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".pdf"))
		}).
		Return("https://cdn.example.com/prescriptions/abc.pdf", nil)

	fx.prescriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Prescription")).
		Run(func(ctx context.Context, prescription *entity.Prescription) {
			prescription.ID = uuid.New()
		}).
		Return(nil)

	prescription, err := fx.service.Upload(ctx, userID, &usecase.UploadPrescriptionInput{
		PharmacyID:  pharmacyID,
		Title:       "Malaria treatment",
		FileName:    "rx.pdf",
		ContentType: "application/pdf",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/prescriptions/abc.pdf", prescription.FileURL)
	assert.Equal(t, pharmacyID, prescription.PharmacyID)
	assert.False(t, prescription.IsRead)
}

func TestPrescriptionService_Upload_RejectsUnsupportedContentType(t *testing.T) {
	fx := createTestPrescriptionService(t)

	// No storage or repository calls may happen for a rejected type.
	prescription, err := fx.service.Upload(context.Background(), uuid.New(), &usecase.UploadPrescriptionInput{
		PharmacyID:  uuid.New(),
		FileName:    "rx.gif",
		ContentType: "image/gif",
		Content:     strings.NewReader("GIF89a"),
	})

	require.Error(t, err)
	assert.Nil(t, prescription)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestPrescriptionService_Upload_StorageFailure(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()
	content := strings.NewReader("fake image bytes")

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)

	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", content).
		Return("", errors.New("bucket unavailable"))

	prescription, err := fx.service.Upload(ctx, uuid.New(), &usecase.UploadPrescriptionInput{
		PharmacyID:  pharmacyID,
		FileName:    "rx.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.Error(t, err)
	assert.Nil(t, prescription)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestPrescriptionService_MarkRead_ScopedToOwnPharmacy(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	prescriptionID := uuid.New()

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.prescriptionRepo.EXPECT().
		MarkRead(ctx, prescriptionID, pharmacy.ID).
		Return(repository.ErrPrescriptionNotFound)

	err := fx.service.MarkRead(ctx, pharmacyUserID, prescriptionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPrescriptionNotFound))
}

func TestPrescriptionService_ListForPharmacy_NoPharmacyProfile(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByUserID(ctx, pharmacyUserID).
		Return(nil, repository.ErrPharmacyNotFound)

	prescriptions, err := fx.service.ListForPharmacy(ctx, pharmacyUserID)

	require.Error(t, err)
	assert.Nil(t, prescriptions)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}

func TestPrescriptionService_Get_VisibleToUploader(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	prescription := &entity.Prescription{ID: uuid.New(), UserID: userID, PharmacyID: uuid.New()}

	fx.prescriptionRepo.EXPECT().FindByID(ctx, prescription.ID).Return(prescription, nil)

	found, err := fx.service.Get(ctx, userID, prescription.ID)

	require.NoError(t, err)
	assert.Equal(t, prescription, found)
}

func TestPrescriptionService_Get_VisibleToTargetPharmacy(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	prescription := &entity.Prescription{ID: uuid.New(), UserID: uuid.New(), PharmacyID: pharmacy.ID}

	fx.prescriptionRepo.EXPECT().FindByID(ctx, prescription.ID).Return(prescription, nil)
	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)

	found, err := fx.service.Get(ctx, pharmacyUserID, prescription.ID)

	require.NoError(t, err)
	assert.Equal(t, prescription, found)
}

func TestPrescriptionService_Get_HiddenFromThirdParties(t *testing.T) {
	fx := createTestPrescriptionService(t)

	ctx := context.Background()
	otherPatientID := uuid.New()
	prescription := &entity.Prescription{ID: uuid.New(), UserID: uuid.New(), PharmacyID: uuid.New()}

	fx.prescriptionRepo.EXPECT().FindByID(ctx, prescription.ID).Return(prescription, nil)
	// The caller is neither the uploader nor a pharmacy account.
	fx.pharmacyRepo.EXPECT().
		FindByUserID(ctx, otherPatientID).
		Return(nil, repository.ErrPharmacyNotFound)

	found, err := fx.service.Get(ctx, otherPatientID, prescription.ID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrPrescriptionNotFound))
}
