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
)

// permissionRepository implements the domain's PermissionRepository interface using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

// List retrieves all non-deleted permissions.
func (repo *permissionRepository) List(ctx context.Context) ([]*entity.PermissionGrant, error) {
	var models []*model.PermissionModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	perms := make([]*entity.PermissionGrant, 0, len(models))
	for _, m := range models {
		perms = append(perms, toPermissionDomain(m))
	}

	return perms, nil
}

// FindByID retrieves a single permission by ID, soft-deleted rows included.
func (repo *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PermissionGrant, error) {
	var m model.PermissionModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find permission by id")
	}

	return toPermissionDomain(&m), nil
}

// FindByIDs retrieves the non-deleted permissions matching the given IDs.
// Callers compare result length against the request to detect unknown IDs.
func (repo *permissionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.PermissionGrant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []*model.PermissionModel
	err := repo.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find permissions by ids")
	}

	perms := make([]*entity.PermissionGrant, 0, len(models))
	for _, m := range models {
		perms = append(perms, toPermissionDomain(m))
	}

	return perms, nil
}

// Create persists a new permission.
func (repo *permissionRepository) Create(ctx context.Context, perm *entity.PermissionGrant) error {
	m := fromPermissionDomain(perm)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	perm.ID = m.ID
	perm.CreatedAt = m.CreatedAt
	perm.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing permission.
func (repo *permissionRepository) Update(ctx context.Context, perm *entity.PermissionGrant) error {
	m := fromPermissionDomain(perm)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update permission")
	}

	perm.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the permission deleted and clears the active flag.
func (repo *permissionRepository) SoftDelete(ctx context.Context, perm *entity.PermissionGrant) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.PermissionModel{}).
		Where("id = ?", perm.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"active":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete permission")
	}

	perm.DeletedAt = &now
	perm.Active = false
	perm.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toPermissionDomain(data *model.PermissionModel) *entity.PermissionGrant {
	if data == nil {
		return nil
	}

	return &entity.PermissionGrant{
		ID:          data.ID,
		Name:        entity.Permission(data.Name),
		Description: data.Description,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}

func fromPermissionDomain(data *entity.PermissionGrant) *model.PermissionModel {
	if data == nil {
		return nil
	}

	return &model.PermissionModel{
		ID:          data.ID,
		Name:        string(data.Name),
		Description: data.Description,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}
