package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRoleInput creates a role. The permission list must not be empty;
// a role always carries at least one permission.
type CreateRoleInput struct {
	Name          string      `json:"name" validate:"required"`
	Description   string      `json:"description"`
	PermissionIDs []uuid.UUID `json:"permissions"`
}

// UpdateRoleInput carries a partial role update. A non-nil PermissionIDs
// replaces the role's permission set.
type UpdateRoleInput struct {
	Name          *string     `json:"name"`
	Description   *string     `json:"description"`
	Active        *bool       `json:"active"`
	PermissionIDs []uuid.UUID `json:"permissions"`
}

// RoleUsecase exposes role administration.
type RoleUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Role, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Role, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateRoleInput) (*entity.Role, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateRoleInput) (*entity.Role, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// CreatePermissionInput creates an atomic capability.
type CreatePermissionInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdatePermissionInput carries a partial permission update.
type UpdatePermissionInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// PermissionUsecase exposes permission administration.
type PermissionUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.PermissionGrant, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.PermissionGrant, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreatePermissionInput) (*entity.PermissionGrant, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdatePermissionInput) (*entity.PermissionGrant, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
