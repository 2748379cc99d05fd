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

// orderItemRepository implements the domain's OrderItemRepository interface using GORM.
// Order items are materialized copies; removing an order purges them.
type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{db: db}
}

// ListByOrder retrieves the items of one order.
func (repo *orderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var models []*model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(models))
	for _, m := range models {
		items = append(items, toOrderItemDomain(m))
	}

	return items, nil
}

// Create persists a new order item.
func (repo *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	m := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown order or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt

	return nil
}

// DeleteByOrder removes every item of the order for good.
func (repo *orderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.OrderItemModel{}, "order_id = ?", orderID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
