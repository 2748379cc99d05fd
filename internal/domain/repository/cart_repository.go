package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a cart does not exist.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when a cart item does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	List(ctx context.Context) ([]*entity.Cart, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// FindActiveByClient retrieves the client's non-deleted cart, if any.
	// Used to enforce the one-active-cart-per-client rule.
	FindActiveByClient(ctx context.Context, clientID uuid.UUID) (*entity.Cart, error)

	Create(ctx context.Context, cart *entity.Cart) error
	Update(ctx context.Context, cart *entity.Cart) error
	SoftDelete(ctx context.Context, cart *entity.Cart) error
}

// CartItemRepository defines the standard operations for cart item
// persistence. Cart items carry no soft-delete envelope; removal is final.
type CartItemRepository interface {
	List(ctx context.Context) ([]*entity.CartItem, error)
	ListByCart(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, item *entity.CartItem) error
}
