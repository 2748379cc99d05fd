package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the domain's RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// List retrieves all non-deleted roles with their permissions attached.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var models []*model.RoleModel
	err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(models))
	for _, m := range models {
		roles = append(roles, toRoleDomain(m))
	}

	return roles, nil
}

// FindByID retrieves a single role by ID, soft-deleted rows included.
func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var m model.RoleModel
	err := repo.db.WithContext(ctx).
		Preload("Permissions").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleDomain(&m), nil
}

// Create persists a new role and links the permission grants carried on
// the entity. Permission rows themselves are never upserted here.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	m := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Omit("Permissions.*").Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = m.ID
	role.CreatedAt = m.CreatedAt
	role.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing role and replaces its permission set with
// the grants carried on the entity.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	m := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}

	if err := repo.db.WithContext(ctx).Model(m).Association("Permissions").Replace(m.Permissions); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update role permissions")
	}

	role.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the role deleted and clears the active flag. Join
// table rows stay in place for auditing.
func (repo *roleRepository) SoftDelete(ctx context.Context, role *entity.Role) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"active":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete role")
	}

	role.DeletedAt = &now
	role.Active = false
	role.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	perms := make([]entity.PermissionGrant, 0, len(data.Permissions))
	for i := range data.Permissions {
		perms = append(perms, *toPermissionDomain(&data.Permissions[i]))
	}

	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Active:      data.Active,
		Permissions: perms,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}

func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	perms := make([]model.PermissionModel, 0, len(data.Permissions))
	for i := range data.Permissions {
		perms = append(perms, model.PermissionModel{ID: data.Permissions[i].ID})
	}

	return &model.RoleModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Active:      data.Active,
		Permissions: perms,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}
