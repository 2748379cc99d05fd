package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Categories form a tree through the optional
// parent reference; nesting depth is not limited.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
