package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput creates a category, optionally under a parent.
type CreateCategoryInput struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent"`
}

// UpdateCategoryInput carries a partial category update.
type UpdateCategoryInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ParentID    *uuid.UUID `json:"parent"`
}

// CategoryUsecase exposes category administration.
type CategoryUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Category, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// CreateCurrencyInput creates a currency.
type CreateCurrencyInput struct {
	Code   string `json:"code" validate:"required,len=3"`
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`
}

// UpdateCurrencyInput carries a partial currency update.
type UpdateCurrencyInput struct {
	Code   *string `json:"code" validate:"omitempty,len=3"`
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

// CurrencyUsecase exposes currency administration.
type CurrencyUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Currency, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Currency, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateCurrencyInput) (*entity.Currency, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateCurrencyInput) (*entity.Currency, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
