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

// globalVarRepository implements the domain's GlobalVarRepository interface using GORM.
type globalVarRepository struct {
	db *gorm.DB
}

// NewGlobalVarRepository is the constructor for globalVarRepository.
func NewGlobalVarRepository(db *gorm.DB) repository.GlobalVarRepository {
	return &globalVarRepository{db: db}
}

// List retrieves all non-deleted global variables.
func (repo *globalVarRepository) List(ctx context.Context) ([]*entity.GlobalVar, error) {
	var models []*model.GlobalVarModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("key").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list global variables")
	}

	vars := make([]*entity.GlobalVar, 0, len(models))
	for _, m := range models {
		vars = append(vars, toGlobalVarDomain(m))
	}

	return vars, nil
}

// FindByID retrieves a single global variable by ID, soft-deleted rows included.
func (repo *globalVarRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GlobalVar, error) {
	var m model.GlobalVarModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGlobalVarNotFound
		}

		return nil, errors.Wrap(err, "failed to find global variable by id")
	}

	return toGlobalVarDomain(&m), nil
}

// FindByKey retrieves a non-deleted global variable by its unique key.
func (repo *globalVarRepository) FindByKey(ctx context.Context, key string) (*entity.GlobalVar, error) {
	var m model.GlobalVarModel
	err := repo.db.WithContext(ctx).
		Where("key = ? AND deleted_at IS NULL", key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGlobalVarNotFound
		}

		return nil, errors.Wrap(err, "failed to find global variable by key")
	}

	return toGlobalVarDomain(&m), nil
}

// Create persists a new global variable.
func (repo *globalVarRepository) Create(ctx context.Context, gv *entity.GlobalVar) error {
	m := fromGlobalVarDomain(gv)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("global variable key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create global variable")
	}

	gv.ID = m.ID
	gv.CreatedAt = m.CreatedAt
	gv.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing global variable.
func (repo *globalVarRepository) Update(ctx context.Context, gv *entity.GlobalVar) error {
	m := fromGlobalVarDomain(gv)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("global variable key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update global variable")
	}

	gv.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the global variable deleted. The row keeps occupying
// the unique key until it is purged out of band.
func (repo *globalVarRepository) SoftDelete(ctx context.Context, gv *entity.GlobalVar) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.GlobalVarModel{}).
		Where("id = ?", gv.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete global variable")
	}

	gv.DeletedAt = &now
	gv.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toGlobalVarDomain(data *model.GlobalVarModel) *entity.GlobalVar {
	if data == nil {
		return nil
	}

	return &entity.GlobalVar{
		ID:          data.ID,
		Key:         data.Key,
		Description: data.Description,
		Value:       data.Value,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}

func fromGlobalVarDomain(data *entity.GlobalVar) *model.GlobalVarModel {
	if data == nil {
		return nil
	}

	return &model.GlobalVarModel{
		ID:          data.ID,
		Key:         data.Key,
		Description: data.Description,
		Value:       data.Value,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}
