package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency is a priced unit referenced by products and orders.
type Currency struct {
	ID        uuid.UUID
	Code      string // ISO-style code, e.g. "USD"
	Name      string
	Symbol    string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
