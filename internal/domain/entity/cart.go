package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the single active shopping cart of a client. A client owns at
// most one non-deleted cart; items can only be added while Status is true.
type Cart struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// CartItem is a product/quantity pair inside a cart. Updating an item to
// quantity zero removes it instead of storing a zero-quantity row.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
