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

func newProductService(store *memStore) usecase.ProductUsecase {
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	return NewProductService(authz, &memTxManager{store}, testLogger())
}

func seedValidatableProduct(store *memStore) *entity.Product {
	categoryID := uuid.New()
	currencyID := uuid.New()
	store.categories[categoryID] = &entity.Category{ID: categoryID, Name: "books"}
	store.currencies[currencyID] = &entity.Currency{ID: currencyID, Code: "USD", Status: true}

	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "novel",
		Price:      12.5,
		CategoryID: &categoryID,
		CurrencyID: &currencyID,
	}
	store.products[product.ID] = product

	return product
}

func TestProductCreate_AlwaysStartsUnpublished(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateProduct)
	srv := newProductService(store)

	product, err := srv.Create(context.Background(), actor.ID, &usecase.CreateProductInput{
		Name:  "novel",
		Price: 12.5,
	})
	require.NoError(t, err)
	assert.False(t, product.Status)
}

func TestProductValidate_ChecksInOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("no category", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		product.CategoryID = nil

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoCategory))
		assert.EqualError(t, errors.Cause(err), "Product has no category")
	})

	t.Run("no currency", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		product.CurrencyID = nil

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoCurrency))
	})

	t.Run("no document", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoDocument))
	})

	t.Run("no image", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		doc := &entity.Document{ID: uuid.New(), ProductID: product.ID, Type: entity.DocumentPDF}
		store.documents[doc.ID] = doc

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoImage))
	})

	t.Run("no main image", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		doc := &entity.Document{ID: uuid.New(), ProductID: product.ID, Type: entity.DocumentImage}
		store.documents[doc.ID] = doc

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoMainImage))
	})

	t.Run("no characteristics", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		doc := &entity.Document{ID: uuid.New(), ProductID: product.ID, Type: entity.DocumentImage, IsMain: true}
		store.documents[doc.ID] = doc

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNoCharacteristics))
	})

	t.Run("all requirements met", func(t *testing.T) {
		store := newMemStore()
		actor := seedActor(store, entity.PermValidateProduct)
		product := seedValidatableProduct(store)
		doc := &entity.Document{ID: uuid.New(), ProductID: product.ID, Type: entity.DocumentImage, IsMain: true}
		store.documents[doc.ID] = doc
		char := &entity.Characteristic{ID: uuid.New(), ProductID: product.ID, Key: "pages", Value: "320"}
		store.characteristics[char.ID] = char

		err := newProductService(store).Validate(ctx, actor.ID, product.ID)
		require.NoError(t, err)
		assert.True(t, store.products[product.ID].Status)
	})
}

func TestProductValidate_UnknownProduct(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermValidateProduct)

	err := newProductService(store).Validate(context.Background(), actor.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProductGet_CompositePayload(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewProduct)
	product := seedValidatableProduct(store)
	doc := &entity.Document{ID: uuid.New(), ProductID: product.ID, Type: entity.DocumentImage, IsMain: true}
	store.documents[doc.ID] = doc
	char := &entity.Characteristic{ID: uuid.New(), ProductID: product.ID, Key: "pages", Value: "320"}
	store.characteristics[char.ID] = char

	detail, err := newProductService(store).Get(context.Background(), actor.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, detail.Product.ID)
	require.NotNil(t, detail.Category)
	require.NotNil(t, detail.Currency)
	assert.Len(t, detail.Documents, 1)
	assert.Len(t, detail.Characteristics, 1)
}
