package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCurrencyNotFound is returned when a currency does not exist.
var ErrCurrencyNotFound = errors.New("currency not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, category *entity.Category) error
}

// CurrencyRepository defines the standard operations for currency persistence.
type CurrencyRepository interface {
	List(ctx context.Context) ([]*entity.Currency, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error)
	Create(ctx context.Context, currency *entity.Currency) error
	Update(ctx context.Context, currency *entity.Currency) error
	SoftDelete(ctx context.Context, currency *entity.Currency) error
}
