package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role does not exist.
var ErrRoleNotFound = errors.New("role not found")

// ErrPermissionNotFound is returned when a permission does not exist.
var ErrPermissionNotFound = errors.New("permission not found")

// RoleRepository defines the standard operations for role persistence.
// The permission association is carried on the entity: Create and Update
// replace the role's permission set with the grants listed on it.
type RoleRepository interface {
	List(ctx context.Context) ([]*entity.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	Create(ctx context.Context, role *entity.Role) error
	Update(ctx context.Context, role *entity.Role) error
	SoftDelete(ctx context.Context, role *entity.Role) error
}

// PermissionRepository defines the standard operations for permission persistence.
type PermissionRepository interface {
	List(ctx context.Context) ([]*entity.PermissionGrant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PermissionGrant, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.PermissionGrant, error)
	Create(ctx context.Context, perm *entity.PermissionGrant) error
	Update(ctx context.Context, perm *entity.PermissionGrant) error
	SoftDelete(ctx context.Context, perm *entity.PermissionGrant) error
}
