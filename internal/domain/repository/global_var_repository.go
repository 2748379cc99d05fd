package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGlobalVarNotFound is returned when a global variable does not exist.
var ErrGlobalVarNotFound = errors.New("global variable not found")

// GlobalVarRepository defines the standard operations for the process-wide
// keyed configuration table.
type GlobalVarRepository interface {
	List(ctx context.Context) ([]*entity.GlobalVar, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GlobalVar, error)

	// FindByKey retrieves a non-deleted variable by its unique key.
	FindByKey(ctx context.Context, key string) (*entity.GlobalVar, error)

	Create(ctx context.Context, gv *entity.GlobalVar) error
	Update(ctx context.Context, gv *entity.GlobalVar) error
	SoftDelete(ctx context.Context, gv *entity.GlobalVar) error
}
