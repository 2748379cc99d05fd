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

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// List retrieves all non-deleted orders.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var models []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// ListByClient retrieves the non-deleted orders of one client.
func (repo *orderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	var models []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by client")
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// FindByID retrieves a single order by ID, soft-deleted rows included.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&m), nil
}

// FindByIDForClient retrieves an order only when it belongs to the given
// client. Orders of other clients come back as not found.
func (repo *orderRepository) FindByIDForClient(ctx context.Context, id, clientID uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for client")
	}

	return toOrderDomain(&m), nil
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown client or currency")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	m := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	order.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the order deleted and moves its status to DELETED.
func (repo *orderRepository) SoftDelete(ctx context.Context, order *entity.Order) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"status":     string(entity.OrderDeleted),
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete order")
	}

	order.DeletedAt = &now
	order.Status = entity.OrderDeleted
	order.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		ClientID:        data.ClientID,
		TotalPrice:      data.TotalPrice,
		CurrencyID:      data.CurrencyID,
		ShippingAddress: data.ShippingAddress,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		DeletedAt:       data.DeletedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		ClientID:        data.ClientID,
		TotalPrice:      data.TotalPrice,
		CurrencyID:      data.CurrencyID,
		ShippingAddress: data.ShippingAddress,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		DeletedAt:       data.DeletedAt,
	}
}
