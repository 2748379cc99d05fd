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

// cartService implements the CartUsecase interface.
type cartService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *cartService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Cart, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCartList); err != nil {
		return nil, err
	}

	var carts []*entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list carts")
		}
		carts = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return carts, nil
}

func (srv *cartService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Cart, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCart); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// Create opens a cart for the given client. A client owns at most one
// non-deleted cart, so an existing one rejects the request.
func (srv *cartService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCartInput) (*entity.Cart, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateCart); err != nil {
		return nil, err
	}

	cart := &entity.Cart{
		ClientID: input.ClientID,
		Status:   input.Status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ClientRepo().FindByID(ctx, input.ClientID); err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}

		existing, err := repoFactory.CartRepo().FindActiveByClient(ctx, input.ClientID)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(err, "failed to check for existing cart")
		}
		if existing != nil {
			return errors.WithStack(domainerrors.ErrCartExists)
		}

		return repoFactory.CartRepo().Create(ctx, cart)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

func (srv *cartService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCartInput) (*entity.Cart, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateCart); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		found, err := cartRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart")
		}

		if input.Status != nil {
			found.Status = *input.Status
		}

		if err := cartRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

func (srv *cartService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteCart); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find cart")
		}

		return cartRepo.SoftDelete(ctx, cart)
	})
}
