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

// pharmacyRepository implements the repository.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db: db,
	}
}

// Create persists a new pharmacy record.
func (repo *pharmacyRepository) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Create(pharmacyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pharmacy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pharmacy")
	}

	pharmacy.ID = pharmacyM.ID
	pharmacy.CreatedAt = pharmacyM.CreatedAt
	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// FindByID retrieves a single pharmacy by its unique ID.
func (repo *pharmacyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by ID")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// FindByUserID retrieves the pharmacy owned by the given pharmacy-role user.
func (repo *pharmacyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by user ID")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// List retrieves pharmacies matching the filter, most recently created first.
func (repo *pharmacyRepository) List(ctx context.Context, filter repository.PharmacyFilter) ([]*entity.Pharmacy, error) {
	var pharmacyModels []*model.PharmacyModel

	query := repo.db.WithContext(ctx)
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Location != "" {
		query = query.Where("digital_address ILIKE ?", "%"+filter.Location+"%")
	}

	if err := query.
		Order("created_at DESC").
		Find(&pharmacyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// Update overwrites the mutable fields of a pharmacy profile.
func (repo *pharmacyRepository) Update(ctx context.Context, pharmacy *entity.Pharmacy) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Where("id = ?", pharmacy.ID).
		Updates(map[string]any{
			"name":            pharmacy.Name,
			"digital_address": pharmacy.DigitalAddress,
			"latitude":        pharmacy.Latitude,
			"longitude":       pharmacy.Longitude,
			"flyer_url":       pharmacy.FlyerURL,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pharmacy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPharmacyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	return &entity.Pharmacy{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		DigitalAddress: data.DigitalAddress,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		FlyerURL:       data.FlyerURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPharmacyDomain converts a domain Pharmacy entity to a GORM PharmacyModel.
func fromPharmacyDomain(data *entity.Pharmacy) *model.PharmacyModel {
	if data == nil {
		return nil
	}

	return &model.PharmacyModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		DigitalAddress: data.DigitalAddress,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		FlyerURL:       data.FlyerURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
