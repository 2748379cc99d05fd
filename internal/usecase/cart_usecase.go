package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCartInput opens a cart for a client. The client reference is
// required; a client owns at most one active cart.
type CreateCartInput struct {
	ClientID uuid.UUID `json:"client" validate:"required"`
	Status   bool      `json:"status"`
}

// UpdateCartInput carries a partial cart update.
type UpdateCartInput struct {
	Status *bool `json:"status"`
}

// CartUsecase exposes cart administration.
type CartUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Cart, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Cart, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateCartInput) (*entity.Cart, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateCartInput) (*entity.Cart, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// CreateCartItemInput adds a product to a cart.
type CreateCartItemInput struct {
	CartID    uuid.UUID `json:"cart" validate:"required"`
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// UpdateCartItemInput changes an item's quantity. Quantity zero removes
// the item instead of saving it.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartItemUsecase exposes cart item operations. Update reports removal
// distinctly so the delivery layer can answer "Item removed from cart".
type CartItemUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.CartItem, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.CartItem, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateCartItemInput) (*entity.CartItem, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateCartItemInput) (item *entity.CartItem, removed bool, err error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
