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

func newCartItemService(store *memStore) usecase.CartItemUsecase {
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	return NewCartItemService(authz, &memTxManager{store}, testLogger())
}

func seedCartWithProduct(store *memStore, active bool) (*entity.Cart, *entity.Product) {
	cart := &entity.Cart{ID: uuid.New(), ClientID: uuid.New(), Status: active}
	store.carts[cart.ID] = cart
	product := &entity.Product{ID: uuid.New(), Name: "novel", Price: 10}
	store.products[product.ID] = product

	return cart, product
}

func TestCartItemCreate_MissingCart(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCartItem)
	_, product := seedCartWithProduct(store, true)

	_, err := newCartItemService(store).Create(context.Background(), actor.ID, &usecase.CreateCartItemInput{
		CartID:    uuid.New(),
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCartMissing))
	assert.EqualError(t, errors.Cause(err), "Cart does not exist")
}

func TestCartItemCreate_InactiveCart(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCartItem)
	cart, product := seedCartWithProduct(store, false)

	_, err := newCartItemService(store).Create(context.Background(), actor.ID, &usecase.CreateCartItemInput{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCartInactive))
	assert.EqualError(t, errors.Cause(err), "Cart is not active")
}

func TestCartItemCreate_DeletedCartCountsAsMissing(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCartItem)
	cart, product := seedCartWithProduct(store, true)
	cart.DeletedAt = deletedTime()

	_, err := newCartItemService(store).Create(context.Background(), actor.ID, &usecase.CreateCartItemInput{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCartMissing))
}

func TestCartItemCreate_Success(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateCartItem)
	cart, product := seedCartWithProduct(store, true)

	item, err := newCartItemService(store).Create(context.Background(), actor.ID, &usecase.CreateCartItemInput{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.Contains(t, store.cartItems, item.ID)
}

func TestCartItemUpdate_QuantityZeroRemoves(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermUpdateCartItem)
	cart, product := seedCartWithProduct(store, true)
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	store.cartItems[item.ID] = item

	got, removed, err := newCartItemService(store).Update(context.Background(), actor.ID, item.ID, &usecase.UpdateCartItemInput{
		Quantity: 0,
	})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, got)
	assert.NotContains(t, store.cartItems, item.ID)
}

func TestCartItemUpdate_ChangesQuantity(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermUpdateCartItem)
	cart, product := seedCartWithProduct(store, true)
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	store.cartItems[item.ID] = item

	got, removed, err := newCartItemService(store).Update(context.Background(), actor.ID, item.ID, &usecase.UpdateCartItemInput{
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 5, got.Quantity)
}

func TestCartItemDelete_HardDeletes(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermDeleteCartItem)
	cart, product := seedCartWithProduct(store, true)
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	store.cartItems[item.ID] = item

	require.NoError(t, newCartItemService(store).Delete(context.Background(), actor.ID, item.ID))
	assert.NotContains(t, store.cartItems, item.ID)
}
