package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.Order, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForClient retrieves an order only if it belongs to the client.
	FindByIDForClient(ctx context.Context, id, clientID uuid.UUID) (*entity.Order, error)

	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error

	// SoftDelete marks the order deleted and moves its status to DELETED.
	SoftDelete(ctx context.Context, order *entity.Order) error
}

// OrderItemRepository defines the standard operations for order item
// persistence. Items are materialized copies; deleting an order purges
// them for good rather than soft-deleting.
type OrderItemRepository interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	Create(ctx context.Context, item *entity.OrderItem) error
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}
