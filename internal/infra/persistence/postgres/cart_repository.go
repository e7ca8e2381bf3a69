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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's active cart with its items.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findByUserID(ctx, userID, false)
}

// FindByUserIDForUpdate retrieves the user's active cart while holding a row
// lock for the duration of the surrounding transaction.
func (repo *cartRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findByUserID(ctx, userID, true)
}

func (repo *cartRepository) findByUserID(ctx context.Context, userID uuid.UUID, forUpdate bool) (*entity.Cart, error) {
	var cartM model.CartModel

	tx := repo.db.WithContext(ctx)
	if forUpdate {
		// Serializes concurrent mutations of the same cart. The items are
		// loaded separately so the lock only covers the cart row.
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := tx.
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user ID")
	}

	var itemModels []model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("cart_user_id = ?", userID).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}
	cartM.Items = itemModels

	return toCartDomain(&cartM), nil
}

// Save upserts the cart and bumps its version.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("user_id = ? AND version = ?", cart.UserID, cart.Version).
		Updates(map[string]any{
			"pharmacy_id": cart.PharmacyID,
			"version":     cart.Version + 1,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart")
	}

	if result.RowsAffected == 0 {
		// Either the cart does not exist yet or a concurrent mutation
		// bumped the version since we read it. Callers that lock the cart
		// row never hit the conflict branch; it trips only when a writer
		// skipped the lock.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CartModel{}).
			Where("user_id = ?", cart.UserID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check cart existence")
		}
		if count > 0 {
			return repository.ErrCartConflict
		}

		cartM := fromCartDomain(cart)
		cartM.Version = cart.Version + 1
		cartM.Items = nil
		if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
			// Two concurrent first writes race to insert; the loser lands
			// on the primary key.
			if isUniqueConstraintViolation(err) {
				return repository.ErrCartConflict
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
		}
		cart.CreatedAt = cartM.CreatedAt
	}

	// Replace the item lines wholesale. The cart row lock taken by the
	// caller keeps this consistent under concurrency.
	if err := repo.db.WithContext(ctx).
		Where("cart_user_id = ?", cart.UserID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	if len(cart.Items) > 0 {
		itemModels := make([]model.CartItemModel, 0, len(cart.Items))
		for _, item := range cart.Items {
			itemModels = append(itemModels, model.CartItemModel{
				CartUserID: cart.UserID,
				MedicineID: item.MedicineID,
				Quantity:   item.Quantity,
			})
		}
		if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}
	}

	cart.Version++

	return nil
}

// Delete removes the user's cart and its items.
func (repo *cartRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			MedicineID: itemM.MedicineID,
			Quantity:   itemM.Quantity,
		})
	}

	return &entity.Cart{
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Items:      items,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	items := make([]model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CartItemModel{
			CartUserID: data.UserID,
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
		})
	}

	return &model.CartModel{
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Items:      items,
	}
}
