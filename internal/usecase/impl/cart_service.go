package impl

import (
	"context"
	"log/slog"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// Every mutation locks the cart row for the duration of its transaction, so
// two concurrent adds merge instead of overwriting each other.
type cartService struct {
	txManager    repository.TransactionManager
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	pharmacyRepo repository.PharmacyRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CartRepo     repository.CartRepository
	MedicineRepo repository.MedicineRepository
	PharmacyRepo repository.PharmacyRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:    params.TxManager,
		cartRepo:     params.CartRepo,
		medicineRepo: params.MedicineRepo,
		pharmacyRepo: params.PharmacyRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem adds the medicine to the cart, merging quantities when the line
// already exists.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, input.MedicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve medicine for cart")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			cart = &entity.Cart{
				UserID:     userID,
				PharmacyID: medicine.PharmacyID,
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to load cart for add")
		}

		if cart.PharmacyID != medicine.PharmacyID {
			return domainerrors.ErrCartPharmacyMismatch.WrapMessage("cart holds items from another pharmacy")
		}

		if line := cart.Line(medicine.ID); line != nil {
			line.Quantity += input.Quantity
		} else {
			cart.Items = append(cart.Items, entity.CartItem{
				MedicineID: medicine.ID,
				Quantity:   input.Quantity,
			})
		}

		return saveCart(ctx, cartRepo, cart)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.Any("medicineID", medicine.ID))

	return srv.GetCart(ctx, userID)
}

// saveCart persists the cart, translating a stale-version save into the
// domain conflict error.
func saveCart(ctx context.Context, cartRepo repository.CartRepository, cart *entity.Cart) error {
	if err := cartRepo.Save(ctx, cart); err != nil {
		if errors.Is(err, repository.ErrCartConflict) {
			return domainerrors.ErrCartConflict
		}

		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// GetCart retrieves the priced cart. Prices come from the current inventory,
// so a pharmacy's price change is visible on the next read.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// No cart record reads as an empty cart, not an error.
			return &usecase.CartOutput{Lines: []usecase.CartLineOutput{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, cart.PharmacyID)
	if err != nil && !errors.Is(err, repository.ErrPharmacyNotFound) {
		return nil, errors.Wrap(err, "failed to resolve cart pharmacy")
	}

	output := &usecase.CartOutput{
		PharmacyID: cart.PharmacyID,
		UpdatedAt:  cart.UpdatedAt,
	}
	if pharmacy != nil {
		output.PharmacyName = pharmacy.Name
	}

	for _, item := range cart.Items {
		medicine, err := srv.medicineRepo.FindByID(ctx, item.MedicineID)
		if errors.Is(err, repository.ErrMedicineNotFound) {
			// The pharmacy delisted this item since it was added. The
			// line stays in the cart but cannot be priced.
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to price cart line")
		}

		line := usecase.CartLineOutput{
			MedicineID:   medicine.ID,
			MedicineName: medicine.Name,
			UnitPrice:    medicine.Price,
			Quantity:     item.Quantity,
			Subtotal:     medicine.Price * float64(item.Quantity),
		}
		output.Lines = append(output.Lines, line)
		output.Total += line.Subtotal
	}

	return output, nil
}

// UpdateItem sets the absolute quantity of an existing line.
func (srv *cartService) UpdateItem(ctx context.Context, userID, medicineID uuid.UUID, input *usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound
			}

			return errors.Wrap(err, "failed to load cart for update")
		}

		line := cart.Line(medicineID)
		if line == nil {
			return domainerrors.ErrMedicineNotFound.WrapMessage("medicine not in cart")
		}
		line.Quantity = input.Quantity

		return saveCart(ctx, cartRepo, cart)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem deletes one line. Removing the last line deletes the cart, so
// an empty cart is never persisted.
func (srv *cartService) RemoveItem(ctx context.Context, userID, medicineID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound
			}

			return errors.Wrap(err, "failed to load cart for removal")
		}

		if cart.Line(medicineID) == nil {
			return domainerrors.ErrMedicineNotFound.WrapMessage("medicine not in cart")
		}

		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.MedicineID != medicineID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept

		if cart.IsEmpty() {
			srv.log(ctx).Debug("Cart emptied, deleting", slog.Any("userID", userID))

			return cartRepo.Delete(ctx, userID)
		}

		return saveCart(ctx, cartRepo, cart)
	})
}

// Clear deletes the cart outright. Clearing an already absent cart succeeds.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
}
