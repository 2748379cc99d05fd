package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(store *memStore) usecase.CartUsecase {
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	return NewCartService(authz, &memTxManager{store}, testLogger())
}

func TestCartCreate_OneActiveCartPerClient(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCart)
	srv := newCartService(store)

	first, err := srv.Create(context.Background(), actor.ID, &usecase.CreateCartInput{
		ClientID: actor.ID,
		Status:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = srv.Create(context.Background(), actor.ID, &usecase.CreateCartInput{
		ClientID: actor.ID,
		Status:   true,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCartExists))
	assert.EqualError(t, errors.Cause(err), "User already has a cart")
}

func TestCartCreate_AllowedAgainAfterDelete(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCart, entity.PermDeleteCart)
	srv := newCartService(store)

	first, err := srv.Create(context.Background(), actor.ID, &usecase.CreateCartInput{
		ClientID: actor.ID,
		Status:   true,
	})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(context.Background(), actor.ID, first.ID))

	_, err = srv.Create(context.Background(), actor.ID, &usecase.CreateCartInput{
		ClientID: actor.ID,
		Status:   true,
	})
	assert.NoError(t, err)
}

func TestCartCreate_UnknownClient(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCart)

	_, err := newCartService(store).Create(context.Background(), actor.ID, &usecase.CreateCartInput{
		ClientID: uuid.New(),
		Status:   true,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartDelete_SoftDeletes(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermDeleteCart)
	cart := &entity.Cart{ID: uuid.New(), ClientID: actor.ID, Status: true}
	store.carts[cart.ID] = cart

	require.NoError(t, newCartService(store).Delete(context.Background(), actor.ID, cart.ID))
	assert.NotNil(t, store.carts[cart.ID].DeletedAt)
	assert.False(t, store.carts[cart.ID].Status)
}

func TestCartList_RequiresPermission(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewCart)

	_, err := newCartService(store).List(context.Background(), actor.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
