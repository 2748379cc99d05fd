package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_FindByIDForClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	orderRepo := NewOrderRepository(db)

	owner := uuid.New()
	order := &entity.Order{ClientID: owner, Status: entity.OrderPending, TotalPrice: 42}
	require.NoError(t, orderRepo.Create(ctx, order))

	found, err := orderRepo.FindByIDForClient(ctx, order.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	// Another client's lookup comes back as not found, not forbidden.
	_, err = orderRepo.FindByIDForClient(ctx, order.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_SoftDeleteMarksStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	orderRepo := NewOrderRepository(db)
	itemRepo := NewOrderItemRepository(db)

	order := &entity.Order{ClientID: uuid.New(), Status: entity.OrderPending}
	require.NoError(t, orderRepo.Create(ctx, order))

	item := &entity.OrderItem{OrderID: order.ID, ProductID: uuid.New(), Quantity: 3}
	require.NoError(t, itemRepo.Create(ctx, item))

	require.NoError(t, itemRepo.DeleteByOrder(ctx, order.ID))
	require.NoError(t, orderRepo.SoftDelete(ctx, order))

	items, err := itemRepo.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	found, err := orderRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDeleted, found.Status)
	assert.NotNil(t, found.DeletedAt)

	orders, err := orderRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_ListByClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	orderRepo := NewOrderRepository(db)

	mine := uuid.New()
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{ClientID: mine, Status: entity.OrderPending}))
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{ClientID: uuid.New(), Status: entity.OrderPending}))

	orders, err := orderRepo.ListByClient(ctx, mine)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine, orders[0].ClientID)
}
