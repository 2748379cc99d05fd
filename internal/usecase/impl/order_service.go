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

// orderService implements the OrderUsecase interface.
type orderService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

// List returns every non-deleted order as a composite payload with its
// client, currency, and items.
func (srv *orderService) List(ctx context.Context, actorID uuid.UUID) ([]*usecase.OrderDetail, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewOrderList); err != nil {
		return nil, err
	}

	var details []*usecase.OrderDetail
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, err := repoFactory.OrderRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		details = make([]*usecase.OrderDetail, 0, len(orders))
		for _, order := range orders {
			detail, err := srv.assembleDetail(ctx, repoFactory, order)
			if err != nil {
				return err
			}
			details = append(details, detail)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

// ListSelf returns the actor's own orders.
func (srv *orderService) ListSelf(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error) {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewOrderListSelf)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListByClient(ctx, actor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list client orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (srv *orderService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Order, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewOrder); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetSelf retrieves an order only when it belongs to the actor. Someone
// else's order answers not-found rather than forbidden.
func (srv *orderService) GetSelf(ctx context.Context, actorID, id uuid.UUID) (*entity.Order, error) {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewOrderSelf)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDForClient(ctx, id, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Create converts a cart into an order inside a single transaction: a new
// PENDING order owned by the actor, an item copied per cart item, the total
// accumulated from product prices. An empty cart or a currency mismatch
// rolls the whole order back; nothing partial survives.
func (srv *orderService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.OrderDetail, error) {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateOrder)
	if err != nil {
		return nil, err
	}

	var detail *usecase.OrderDetail
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order := &entity.Order{
			ClientID:        actor.ID,
			CurrencyID:      input.CurrencyID,
			ShippingAddress: input.ShippingAddress,
			Status:          entity.OrderPending,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cart, err := srv.resolveCart(ctx, repoFactory, actor.ID, input.CartID)
		if err != nil {
			return err
		}

		cartItems, err := repoFactory.CartItemRepo().ListByCart(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		if len(cartItems) == 0 {
			return errors.WithStack(domainerrors.ErrCartEmpty)
		}

		var total float64
		orderItems := make([]*entity.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			product, err := repoFactory.ProductRepo().FindByID(ctx, cartItem.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find cart item product")
			}

			if order.CurrencyID == nil {
				// The first priced item settles the order currency when the
				// request named none.
				order.CurrencyID = product.CurrencyID
			} else if product.CurrencyID == nil || *product.CurrencyID != *order.CurrencyID {
				return errors.WithStack(domainerrors.ErrCurrencyMismatch)
			}

			orderItem := &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
			}
			if err := repoFactory.OrderItemRepo().Create(ctx, orderItem); err != nil {
				return errors.Wrap(err, "failed to create order item")
			}
			orderItems = append(orderItems, orderItem)

			total += product.Price * float64(cartItem.Quantity)
		}

		order.TotalPrice = total
		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order total")
		}

		detail = &usecase.OrderDetail{
			Order:  order,
			Client: actor,
			Items:  orderItems,
		}
		if order.CurrencyID != nil {
			currency, err := repoFactory.CurrencyRepo().FindByID(ctx, *order.CurrencyID)
			if err != nil && !errors.Is(err, repository.ErrCurrencyNotFound) {
				return errors.Wrap(err, "failed to find order currency")
			}
			detail.Currency = currency
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// Update applies a partial order update. TotalPrice and CurrencyID in the
// payload are discarded: both are settled at creation and immutable here.
func (srv *orderService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateOrder); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}

		if input.ShippingAddress != nil {
			found.ShippingAddress = *input.ShippingAddress
		}
		if input.Status != nil {
			status := entity.OrderStatus(*input.Status)
			if !status.IsValid() {
				return errors.WithStack(domainerrors.ErrValidationFailed)
			}
			found.Status = status
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Delete soft-deletes the order and purges its items. This is the one place
// a child collection is hard-deleted rather than soft-deleted.
func (srv *orderService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteOrder); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := repoFactory.OrderItemRepo().DeleteByOrder(ctx, order.ID); err != nil {
			return errors.Wrap(err, "failed to purge order items")
		}

		return orderRepo.SoftDelete(ctx, order)
	})
}

// resolveCart picks the explicit cart when an id was given, otherwise the
// actor's own, answering with the cart business messages on failure.
func (srv *orderService) resolveCart(ctx context.Context, repoFactory repository.RepositoryFactory, clientID uuid.UUID, cartID *uuid.UUID) (*entity.Cart, error) {
	if cartID != nil {
		cart, err := repoFactory.CartRepo().FindByID(ctx, *cartID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return nil, errors.WithStack(domainerrors.ErrCartMissing)
			}

			return nil, errors.Wrap(err, "failed to find cart")
		}
		if cart.DeletedAt != nil {
			return nil, errors.WithStack(domainerrors.ErrCartMissing)
		}

		return cart, nil
	}

	cart, err := repoFactory.CartRepo().FindActiveByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCartMissing)
		}

		return nil, errors.Wrap(err, "failed to find client cart")
	}

	return cart, nil
}

// assembleDetail loads the composite payload pieces for one order.
func (srv *orderService) assembleDetail(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) (*usecase.OrderDetail, error) {
	detail := &usecase.OrderDetail{Order: order}

	client, err := repoFactory.ClientRepo().FindByID(ctx, order.ClientID)
	if err != nil && !errors.Is(err, repository.ErrClientNotFound) {
		return nil, errors.Wrap(err, "failed to find order client")
	}
	detail.Client = client

	if order.CurrencyID != nil {
		currency, err := repoFactory.CurrencyRepo().FindByID(ctx, *order.CurrencyID)
		if err != nil && !errors.Is(err, repository.ErrCurrencyNotFound) {
			return nil, errors.Wrap(err, "failed to find order currency")
		}
		detail.Currency = currency
	}

	items, err := repoFactory.OrderItemRepo().ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}
	detail.Items = items

	return detail, nil
}
