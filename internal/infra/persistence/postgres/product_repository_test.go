package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_SoftDeleteUnpublishes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	productRepo := NewProductRepository(db)

	product := &entity.Product{Name: "Lamp", Price: 19.99, Status: true}
	require.NoError(t, productRepo.Create(ctx, product))
	require.NoError(t, productRepo.SoftDelete(ctx, product))

	found, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, found.Status)
	assert.NotNil(t, found.DeletedAt)

	products, err := productRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDocumentRepository_ListByProductExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	productRepo := NewProductRepository(db)
	docRepo := NewDocumentRepository(db)

	product := &entity.Product{Name: "Lamp"}
	require.NoError(t, productRepo.Create(ctx, product))

	kept := &entity.Document{Name: "front.png", ProductID: product.ID, Type: entity.DocumentImage, IsMain: true}
	require.NoError(t, docRepo.Create(ctx, kept))

	dropped := &entity.Document{Name: "old.png", ProductID: product.ID, Type: entity.DocumentImage}
	require.NoError(t, docRepo.Create(ctx, dropped))
	require.NoError(t, docRepo.SoftDelete(ctx, dropped))

	// A different product's documents never leak in.
	require.NoError(t, docRepo.Create(ctx, &entity.Document{Name: "other.png", ProductID: uuid.New(), Type: entity.DocumentImage}))

	docs, err := docRepo.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "front.png", docs[0].Name)
	assert.True(t, docs[0].IsMain)
}

func TestCharacteristicRepository_ListByProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	productRepo := NewProductRepository(db)
	charRepo := NewCharacteristicRepository(db)

	product := &entity.Product{Name: "Lamp"}
	require.NoError(t, productRepo.Create(ctx, product))

	color := &entity.Characteristic{Key: "color", Value: "black", ProductID: product.ID, Status: true}
	require.NoError(t, charRepo.Create(ctx, color))

	shade := &entity.Characteristic{Key: "shade", Value: "matte", ProductID: product.ID, ParentID: &color.ID, Status: true}
	require.NoError(t, charRepo.Create(ctx, shade))

	chars, err := charRepo.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "color", chars[0].Key)
	require.NotNil(t, chars[1].ParentID)
	assert.Equal(t, color.ID, *chars[1].ParentID)
}
