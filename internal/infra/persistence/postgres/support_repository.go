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

// supportRepository implements the domain's SupportRepository interface using GORM.
type supportRepository struct {
	db *gorm.DB
}

// NewSupportRepository is the constructor for supportRepository.
func NewSupportRepository(db *gorm.DB) repository.SupportRepository {
	return &supportRepository{db: db}
}

// List retrieves all non-deleted support tickets.
func (repo *supportRepository) List(ctx context.Context) ([]*entity.Support, error) {
	var models []*model.SupportModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support tickets")
	}

	tickets := make([]*entity.Support, 0, len(models))
	for _, m := range models {
		tickets = append(tickets, toSupportDomain(m))
	}

	return tickets, nil
}

// FindByID retrieves a single support ticket by ID, soft-deleted rows included.
func (repo *supportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Support, error) {
	var m model.SupportModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupportNotFound
		}

		return nil, errors.Wrap(err, "failed to find support ticket by id")
	}

	return toSupportDomain(&m), nil
}

// Create persists a new support ticket.
func (repo *supportRepository) Create(ctx context.Context, ticket *entity.Support) error {
	m := fromSupportDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown client or parent ticket")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create support ticket")
	}

	ticket.ID = m.ID
	ticket.CreatedAt = m.CreatedAt
	ticket.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing support ticket.
func (repo *supportRepository) Update(ctx context.Context, ticket *entity.Support) error {
	m := fromSupportDomain(ticket)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update support ticket")
	}

	ticket.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the support ticket deleted.
func (repo *supportRepository) SoftDelete(ctx context.Context, ticket *entity.Support) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.SupportModel{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete support ticket")
	}

	ticket.DeletedAt = &now
	ticket.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toSupportDomain(data *model.SupportModel) *entity.Support {
	if data == nil {
		return nil
	}

	return &entity.Support{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Message:     data.Message,
		FullName:    data.FullName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Status:      entity.SupportStatus(data.Status),
		ParentID:    data.ParentID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}

func fromSupportDomain(data *entity.Support) *model.SupportModel {
	if data == nil {
		return nil
	}

	return &model.SupportModel{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Message:     data.Message,
		FullName:    data.FullName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Status:      string(data.Status),
		ParentID:    data.ParentID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}
