package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartItemService implements the CartItemUsecase interface.
type cartItemService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartItemService is the constructor for cartItemService.
func NewCartItemService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.CartItemUsecase {
	return &cartItemService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *cartItemService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.CartItem, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCartItemList); err != nil {
		return nil, err
	}

	var items []*entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartItemRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (srv *cartItemService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.CartItem, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCartItem); err != nil {
		return nil, err
	}

	var item *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartItemRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Create adds a product to a cart. The cart must exist, not be deleted, and
// be active; the checks answer with their own business messages.
func (srv *cartItemService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCartItemInput) (*entity.CartItem, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateCartItem); err != nil {
		return nil, err
	}

	item := &entity.CartItem{
		CartID:    input.CartID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindByID(ctx, input.CartID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.WithStack(domainerrors.ErrCartMissing)
			}

			return errors.Wrap(err, "failed to find cart")
		}
		if cart.DeletedAt != nil {
			return errors.WithStack(domainerrors.ErrCartMissing)
		}
		if !cart.Status {
			return errors.WithStack(domainerrors.ErrCartInactive)
		}

		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		return repoFactory.CartItemRepo().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Update changes an item's quantity. Quantity zero removes the item and
// reports removed=true so the delivery layer can answer accordingly.
func (srv *cartItemService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCartItemInput) (*entity.CartItem, bool, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateCartItem); err != nil {
		return nil, false, err
	}

	var item *entity.CartItem
	removed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartItemRepo := repoFactory.CartItemRepo()

		found, err := cartItemRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart item")
		}

		if input.Quantity == 0 {
			if err := cartItemRepo.Delete(ctx, found); err != nil {
				return errors.Wrap(err, "failed to remove cart item")
			}
			removed = true

			return nil
		}

		found.Quantity = input.Quantity
		if err := cartItemRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update cart item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return item, removed, nil
}

func (srv *cartItemService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteCartItem); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartItemRepo := repoFactory.CartItemRepo()

		item, err := cartItemRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart item")
		}

		return cartItemRepo.Delete(ctx, item)
	})
}
