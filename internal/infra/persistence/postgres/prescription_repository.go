package postgres

import (
	"context"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prescriptionRepository implements the repository.PrescriptionRepository interface.
type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository is the constructor for prescriptionRepository.
func NewPrescriptionRepository(db *gorm.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{
		db: db,
	}
}

// Create persists a new prescription record.
func (repo *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM := fromPrescriptionDomain(prescription)

	if err := repo.db.WithContext(ctx).Create(prescriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPharmacyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required prescription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prescription")
	}

	prescription.ID = prescriptionM.ID

	return nil
}

// FindByID retrieves a single prescription by its unique ID.
func (repo *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescriptionM model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&prescriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prescription by ID")
	}

	return toPrescriptionDomain(&prescriptionM), nil
}

// FindByUser retrieves every prescription uploaded by the user, newest first.
func (repo *prescriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&prescriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prescriptions by user")
	}

	return toPrescriptionDomainSlice(prescriptionModels), nil
}

// FindByPharmacy retrieves every prescription addressed to the pharmacy, newest first.
func (repo *prescriptionRepository) FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("pharmacy_id = ?", pharmacyID).
		Order("uploaded_at DESC").
		Find(&prescriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prescriptions by pharmacy")
	}

	return toPrescriptionDomainSlice(prescriptionModels), nil
}

// MarkRead flags one prescription addressed to the pharmacy as read.
func (repo *prescriptionRepository) MarkRead(ctx context.Context, id, pharmacyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PrescriptionModel{}).
		Where("id = ? AND pharmacy_id = ?", id, pharmacyID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark prescription read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPrescriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPrescriptionDomain converts a GORM PrescriptionModel to a domain Prescription entity.
func toPrescriptionDomain(data *model.PrescriptionModel) *entity.Prescription {
	if data == nil {
		return nil
	}

	return &entity.Prescription{
		ID:         data.ID,
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Title:      data.Title,
		Notes:      data.Notes,
		FileURL:    data.FileURL,
		UploadedAt: data.UploadedAt,
		IsRead:     data.IsRead,
	}
}

func toPrescriptionDomainSlice(data []*model.PrescriptionModel) []*entity.Prescription {
	prescriptions := make([]*entity.Prescription, 0, len(data))
	for _, prescriptionM := range data {
		prescriptions = append(prescriptions, toPrescriptionDomain(prescriptionM))
	}

	return prescriptions
}

// fromPrescriptionDomain converts a domain Prescription entity to a GORM PrescriptionModel.
func fromPrescriptionDomain(data *entity.Prescription) *model.PrescriptionModel {
	if data == nil {
		return nil
	}

	return &model.PrescriptionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Title:      data.Title,
		Notes:      data.Notes,
		FileURL:    data.FileURL,
		UploadedAt: data.UploadedAt,
		IsRead:     data.IsRead,
	}
}
