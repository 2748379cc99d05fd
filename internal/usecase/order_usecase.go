package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput starts the order-creation workflow. Cart and currency
// are optional: the cart defaults to the actor's own, the currency to none
// (in which case every item must agree anyway).
type CreateOrderInput struct {
	CartID          *uuid.UUID `json:"cart"`
	CurrencyID      *uuid.UUID `json:"currency"`
	ShippingAddress string     `json:"shipping_address"`
}

// UpdateOrderInput carries a partial order update. TotalPrice and
// CurrencyID may appear in the payload but are discarded: both fields are
// immutable after creation through this path.
type UpdateOrderInput struct {
	TotalPrice      *float64    `json:"total_price"`
	CurrencyID      *uuid.UUID  `json:"currency"`
	ShippingAddress *string     `json:"shipping_address"`
	Status          *string     `json:"status" validate:"omitempty,oneof=PENDING SHIPPED DELIVERED CANCELLED COMPLETE DELETED"`
}

// OrderDetail is the composite order payload: the order with its client,
// currency, and materialized items.
type OrderDetail struct {
	Order    *entity.Order       `json:"order"`
	Client   *entity.Client      `json:"client"`
	Currency *entity.Currency    `json:"currency"`
	Items    []*entity.OrderItem `json:"items"`
}

// OrderUsecase exposes the order module, including the cart-to-order
// conversion workflow. Create runs in a single transaction: a currency
// mismatch or any mid-sequence failure rolls the whole order back.
type OrderUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*OrderDetail, error)
	ListSelf(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Order, error)
	GetSelf(ctx context.Context, actorID, id uuid.UUID) (*entity.Order, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateOrderInput) (*OrderDetail, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
