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

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// List retrieves all non-deleted carts.
func (repo *cartRepository) List(ctx context.Context) ([]*entity.Cart, error) {
	var models []*model.CartModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	carts := make([]*entity.Cart, 0, len(models))
	for _, m := range models {
		carts = append(carts, toCartDomain(m))
	}

	return carts, nil
}

// FindByID retrieves a single cart by ID, soft-deleted rows included.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var m model.CartModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartDomain(&m), nil
}

// FindActiveByClient retrieves the client's non-deleted cart, enforcing
// the one-cart-per-client rule at the lookup level.
func (repo *cartRepository) FindActiveByClient(ctx context.Context, clientID uuid.UUID) (*entity.Cart, error) {
	var m model.CartModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find active cart by client")
	}

	return toCartDomain(&m), nil
}

// Create persists a new cart.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	m := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown client")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = m.ID
	cart.CreatedAt = m.CreatedAt
	cart.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing cart.
func (repo *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	m := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Omit("Items").Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart")
	}

	cart.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the cart deleted and deactivates it. Items stay in
// place; they become unreachable through the non-deleted cart lookups.
func (repo *cartRepository) SoftDelete(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"status":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete cart")
	}

	cart.DeletedAt = &now
	cart.Status = false
	cart.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}
