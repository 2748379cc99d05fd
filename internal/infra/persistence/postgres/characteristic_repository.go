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

// characteristicRepository implements the domain's CharacteristicRepository interface using GORM.
type characteristicRepository struct {
	db *gorm.DB
}

// NewCharacteristicRepository is the constructor for characteristicRepository.
func NewCharacteristicRepository(db *gorm.DB) repository.CharacteristicRepository {
	return &characteristicRepository{db: db}
}

// List retrieves all non-deleted characteristics.
func (repo *characteristicRepository) List(ctx context.Context) ([]*entity.Characteristic, error) {
	var models []*model.CharacteristicModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characteristics")
	}

	characteristics := make([]*entity.Characteristic, 0, len(models))
	for _, m := range models {
		characteristics = append(characteristics, toCharacteristicDomain(m))
	}

	return characteristics, nil
}

// ListByProduct retrieves the non-deleted characteristics of one product.
func (repo *characteristicRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Characteristic, error) {
	var models []*model.CharacteristicModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND deleted_at IS NULL", productID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characteristics by product")
	}

	characteristics := make([]*entity.Characteristic, 0, len(models))
	for _, m := range models {
		characteristics = append(characteristics, toCharacteristicDomain(m))
	}

	return characteristics, nil
}

// FindByID retrieves a single characteristic by ID, soft-deleted rows included.
func (repo *characteristicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Characteristic, error) {
	var m model.CharacteristicModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCharacteristicNotFound
		}

		return nil, errors.Wrap(err, "failed to find characteristic by id")
	}

	return toCharacteristicDomain(&m), nil
}

// Create persists a new characteristic.
func (repo *characteristicRepository) Create(ctx context.Context, characteristic *entity.Characteristic) error {
	m := fromCharacteristicDomain(characteristic)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown product or parent characteristic")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create characteristic")
	}

	characteristic.ID = m.ID
	characteristic.CreatedAt = m.CreatedAt
	characteristic.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing characteristic.
func (repo *characteristicRepository) Update(ctx context.Context, characteristic *entity.Characteristic) error {
	m := fromCharacteristicDomain(characteristic)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update characteristic")
	}

	characteristic.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the characteristic deleted and clears the status flag.
func (repo *characteristicRepository) SoftDelete(ctx context.Context, characteristic *entity.Characteristic) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.CharacteristicModel{}).
		Where("id = ?", characteristic.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"status":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete characteristic")
	}

	characteristic.DeletedAt = &now
	characteristic.Status = false
	characteristic.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toCharacteristicDomain(data *model.CharacteristicModel) *entity.Characteristic {
	if data == nil {
		return nil
	}

	return &entity.Characteristic{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		ProductID: data.ProductID,
		ParentID:  data.ParentID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}

func fromCharacteristicDomain(data *entity.Characteristic) *model.CharacteristicModel {
	if data == nil {
		return nil
	}

	return &model.CharacteristicModel{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		ProductID: data.ProductID,
		ParentID:  data.ParentID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}
