package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSupportInput opens a ticket. Anonymous callers may create one;
// when the actor is authenticated the ticket is attached to them.
type CreateSupportInput struct {
	Message     string     `json:"message" validate:"required"`
	FullName    string     `json:"full_name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phone_number"`
	ParentID    *uuid.UUID `json:"parent"`
}

// UpdateSupportInput carries a partial ticket update by its owner.
type UpdateSupportInput struct {
	Message     *string `json:"message"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

// UpdateSupportStatusInput moves a ticket through its handling states.
type UpdateSupportStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending Resolved Closed"`
}

// SupportUsecase exposes the support ticket module.
type SupportUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Support, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Support, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateSupportInput) (*entity.Support, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateSupportInput) (*entity.Support, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, input *UpdateSupportStatusInput) (*entity.Support, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// CreateGlobalVarInput creates a keyed configuration value.
type CreateGlobalVarInput struct {
	Key         string `json:"key" validate:"required"`
	Description string `json:"description"`
	Value       string `json:"value" validate:"required"`
}

// UpdateGlobalVarInput carries a partial global variable update.
type UpdateGlobalVarInput struct {
	Description *string `json:"description"`
	Value       *string `json:"value"`
}

// GlobalVarUsecase exposes the keyed configuration module.
type GlobalVarUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.GlobalVar, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.GlobalVar, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateGlobalVarInput) (*entity.GlobalVar, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateGlobalVarInput) (*entity.GlobalVar, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
