package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSupportNotFound is returned when a support ticket does not exist.
var ErrSupportNotFound = errors.New("support ticket not found")

// SupportRepository defines the standard operations for support ticket persistence.
type SupportRepository interface {
	List(ctx context.Context) ([]*entity.Support, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Support, error)
	Create(ctx context.Context, ticket *entity.Support) error
	Update(ctx context.Context, ticket *entity.Support) error
	SoftDelete(ctx context.Context, ticket *entity.Support) error
}
