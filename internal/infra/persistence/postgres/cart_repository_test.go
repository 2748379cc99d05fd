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

func TestCartRepository_FindActiveByClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cartRepo := NewCartRepository(db)

	clientID := uuid.New()

	_, err := cartRepo.FindActiveByClient(ctx, clientID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	cart := &entity.Cart{ClientID: clientID, Status: true}
	require.NoError(t, cartRepo.Create(ctx, cart))

	found, err := cartRepo.FindActiveByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)
}

func TestCartRepository_SoftDeleteFreesClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cartRepo := NewCartRepository(db)

	clientID := uuid.New()
	cart := &entity.Cart{ClientID: clientID, Status: true}
	require.NoError(t, cartRepo.Create(ctx, cart))
	require.NoError(t, cartRepo.SoftDelete(ctx, cart))

	// The deleted cart no longer counts against the one-cart rule.
	_, err := cartRepo.FindActiveByClient(ctx, clientID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	// But it stays reachable by ID.
	found, err := cartRepo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.DeletedAt)
	assert.False(t, found.Status)
}

func TestCartItemRepository_HardDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cartRepo := NewCartRepository(db)
	itemRepo := NewCartItemRepository(db)

	cart := &entity.Cart{ClientID: uuid.New(), Status: true}
	require.NoError(t, cartRepo.Create(ctx, cart))

	item := &entity.CartItem{CartID: cart.ID, ProductID: uuid.New(), Quantity: 2}
	require.NoError(t, itemRepo.Create(ctx, item))

	items, err := itemRepo.ListByCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, itemRepo.Delete(ctx, item))

	_, err = itemRepo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)

	items, err = itemRepo.ListByCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
