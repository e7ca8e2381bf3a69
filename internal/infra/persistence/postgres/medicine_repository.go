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

// medicineRepository implements the repository.MedicineRepository interface.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{
		db: db,
	}
}

// Create persists a new inventory item.
func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)

	if err := repo.db.WithContext(ctx).Create(medicineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMedicine
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPharmacyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required medicine information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}

	medicine.ID = medicineM.ID
	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

// FindByID retrieves a single item by its unique ID, regardless of owner.
func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicineM model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medicineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by ID")
	}

	return toMedicineDomain(&medicineM), nil
}

// FindByPharmacyAndID retrieves an item scoped to its owning pharmacy.
func (repo *medicineRepository) FindByPharmacyAndID(ctx context.Context, pharmacyID, id uuid.UUID) (*entity.Medicine, error) {
	var medicineM model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND id = ?", pharmacyID, id).
		First(&medicineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by pharmacy and ID")
	}

	return toMedicineDomain(&medicineM), nil
}

// FindByPharmacy retrieves a pharmacy's stock with an optional name query and pagination.
func (repo *medicineRepository) FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID, query string, limit, offset int) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	tx := repo.db.WithContext(ctx).
		Where("pharmacy_id = ?", pharmacyID)
	if query != "" {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}

	if err := tx.
		Order("name ASC").
		Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find medicines by pharmacy")
	}

	return toMedicineDomainSlice(medicineModels), nil
}

// Search retrieves items matching the discovery filter.
func (repo *medicineRepository) Search(ctx context.Context, filter repository.MedicineFilter) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	tx := repo.db.WithContext(ctx)
	if filter.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		tx = tx.Where("category ILIKE ?", "%"+filter.Category+"%")
	}
	if filter.PharmacyID != nil {
		tx = tx.Where("pharmacy_id = ?", *filter.PharmacyID)
	}
	if filter.InStockOnly {
		tx = tx.Where("quantity > 0")
	}

	if err := tx.
		Order("name ASC").
		Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search medicines")
	}

	return toMedicineDomainSlice(medicineModels), nil
}

// Replace overwrites every mutable field of an item, scoped to its owning pharmacy.
func (repo *medicineRepository) Replace(ctx context.Context, medicine *entity.Medicine) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("pharmacy_id = ? AND id = ?", medicine.PharmacyID, medicine.ID).
		Updates(map[string]any{
			"name":        medicine.Name,
			"quantity":    medicine.Quantity,
			"price":       medicine.Price,
			"category":    medicine.Category,
			"description": medicine.Description,
			"image_url":   medicine.ImageURL,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMedicine
		}

		return errors.Wrap(result.Error, "failed to replace medicine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// Delete removes an item scoped to its owning pharmacy.
func (repo *medicineRepository) Delete(ctx context.Context, pharmacyID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND id = ?", pharmacyID, id).
		Delete(&model.MedicineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete medicine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// CountAll returns the total number of inventory items on the platform.
func (repo *medicineRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count medicines")
	}

	return count, nil
}

// CountByPharmacy returns the number of items stocked by one pharmacy.
func (repo *medicineRepository) CountByPharmacy(ctx context.Context, pharmacyID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("pharmacy_id = ?", pharmacyID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count medicines by pharmacy")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:          data.ID,
		PharmacyID:  data.PharmacyID,
		Name:        data.Name,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Category:    data.Category,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toMedicineDomainSlice(data []*model.MedicineModel) []*entity.Medicine {
	medicines := make([]*entity.Medicine, 0, len(data))
	for _, medicineM := range data {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines
}

// fromMedicineDomain converts a domain Medicine entity to a GORM MedicineModel.
func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	return &model.MedicineModel{
		ID:          data.ID,
		PharmacyID:  data.PharmacyID,
		Name:        data.Name,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Category:    data.Category,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		UpdatedAt:   data.UpdatedAt,
	}
}
