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

// savedPharmacyRepository implements the repository.SavedPharmacyRepository interface.
type savedPharmacyRepository struct {
	db *gorm.DB
}

// NewSavedPharmacyRepository is the constructor for savedPharmacyRepository.
func NewSavedPharmacyRepository(db *gorm.DB) repository.SavedPharmacyRepository {
	return &savedPharmacyRepository{
		db: db,
	}
}

// Create adds a pharmacy to the user's saved list.
func (repo *savedPharmacyRepository) Create(ctx context.Context, saved *entity.SavedPharmacy) error {
	savedM := fromSavedPharmacyDomain(saved)

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedPharmacy
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPharmacyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save pharmacy")
	}

	return nil
}

// Delete removes a pharmacy from the user's saved list.
func (repo *savedPharmacyRepository) Delete(ctx context.Context, userID, pharmacyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND pharmacy_id = ?", userID, pharmacyID).
		Delete(&model.SavedPharmacyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved pharmacy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedPharmacyNotFound
	}

	return nil
}

// FindByUser retrieves the user's saved list, most recently saved first.
func (repo *savedPharmacyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPharmacy, error) {
	var savedModels []*model.SavedPharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&savedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved pharmacies by user")
	}

	saved := make([]*entity.SavedPharmacy, 0, len(savedModels))
	for _, savedM := range savedModels {
		saved = append(saved, toSavedPharmacyDomain(savedM))
	}

	return saved, nil
}

// Exists reports whether the pharmacy is on the user's saved list.
func (repo *savedPharmacyRepository) Exists(ctx context.Context, userID, pharmacyID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SavedPharmacyModel{}).
		Where("user_id = ? AND pharmacy_id = ?", userID, pharmacyID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check saved pharmacy existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toSavedPharmacyDomain converts a GORM SavedPharmacyModel to a domain SavedPharmacy entity.
func toSavedPharmacyDomain(data *model.SavedPharmacyModel) *entity.SavedPharmacy {
	if data == nil {
		return nil
	}

	return &entity.SavedPharmacy{
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		SavedAt:    data.SavedAt,
	}
}

// fromSavedPharmacyDomain converts a domain SavedPharmacy entity to a GORM SavedPharmacyModel.
func fromSavedPharmacyDomain(data *entity.SavedPharmacy) *model.SavedPharmacyModel {
	if data == nil {
		return nil
	}

	return &model.SavedPharmacyModel{
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		SavedAt:    data.SavedAt,
	}
}
