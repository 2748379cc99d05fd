package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClientInput carries the fields an admin supplies when creating a
// client directly.
type CreateClientInput struct {
	Email       string     `json:"email" validate:"omitempty,email"`
	PhoneNumber string     `json:"phone_number"`
	Password    string     `json:"password" validate:"required,min=8"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address"`
	Bio         string     `json:"bio"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=M F O"`
	RoleIDs     []uuid.UUID `json:"roles"`
}

// UpdateClientInput carries a partial update; nil fields are left untouched.
type UpdateClientInput struct {
	Email       *string    `json:"email" validate:"omitempty,email"`
	PhoneNumber *string    `json:"phone_number"`
	Name        *string    `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	Bio         *string    `json:"bio"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=M F O"`
	RoleIDs     []uuid.UUID `json:"roles"`
}

// LoginInput identifies a client by email or phone number plus password.
type LoginInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required"`
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	Token string `json:"token"`
}

// RegisterInput is the self-service registration payload.
type RegisterInput struct {
	Email           string `json:"email" validate:"omitempty,email"`
	PhoneNumber     string `json:"phone_number"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ClientUsecase exposes the client module: permission-gated CRUD, the
// self-service variants that target the actor, credential operations and
// the bulk delete.
type ClientUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Client, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Client, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateClientInput) (*entity.Client, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error)
	SelfUpdate(ctx context.Context, actorID uuid.UUID, input *UpdateClientInput) (*entity.Client, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	SelfDelete(ctx context.Context, actorID uuid.UUID) error
	DeleteList(ctx context.Context, actorID uuid.UUID, ids []uuid.UUID) error
	ResetPassword(ctx context.Context, actorID, id uuid.UUID) error
	SelfResetPassword(ctx context.Context, actorID uuid.UUID) error

	// Login and Register are open endpoints; no permission gate applies.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*entity.Client, error)
}
