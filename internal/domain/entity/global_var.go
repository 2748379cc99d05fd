package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known global variable keys.
const (
	// GlobalVarDefaultPassword holds the password applied by the
	// reset-password operations.
	GlobalVarDefaultPassword = "default_password"
)

// GlobalVar is a process-wide keyed configuration value persisted in the
// store. Keys are unique.
type GlobalVar struct {
	ID          uuid.UUID
	Key         string
	Description string
	Value       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
