package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderComplete  OrderStatus = "COMPLETE"
	OrderDeleted   OrderStatus = "DELETED"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled, OrderComplete, OrderDeleted:
		return true
	default:
		return false
	}
}

// Order is a materialized purchase built from a cart. TotalPrice is always
// computed by the order-creation workflow, never client-supplied, and both
// TotalPrice and CurrencyID are immutable through the standard update path.
type Order struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	TotalPrice      float64
	CurrencyID      *uuid.UUID
	ShippingAddress string
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// OrderItem is a copy of a cart item taken at order-creation time.
// Mutating the cart afterwards does not affect the order.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
