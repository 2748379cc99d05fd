package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cartItemRepository implements the domain's CartItemRepository interface using GORM.
// Cart items carry no soft-delete envelope; removal is a hard delete.
type cartItemRepository struct {
	db *gorm.DB
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepository{db: db}
}

// List retrieves all cart items.
func (repo *cartItemRepository) List(ctx context.Context) ([]*entity.CartItem, error) {
	var models []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(models))
	for _, m := range models {
		items = append(items, toCartItemDomain(m))
	}

	return items, nil
}

// ListByCart retrieves the items of one cart.
func (repo *cartItemRepository) ListByCart(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	var models []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items by cart")
	}

	items := make([]*entity.CartItem, 0, len(models))
	for _, m := range models {
		items = append(items, toCartItemDomain(m))
	}

	return items, nil
}

// FindByID retrieves a single cart item by ID.
func (repo *cartItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var m model.CartItemModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&m), nil
}

// Create persists a new cart item.
func (repo *cartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	m := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown cart or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing cart item.
func (repo *cartItemRepository) Update(ctx context.Context, item *entity.CartItem) error {
	m := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	item.UpdatedAt = m.UpdatedAt

	return nil
}

// Delete removes the cart item for good.
func (repo *cartItemRepository) Delete(ctx context.Context, item *entity.CartItem) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "id = ?", item.ID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
