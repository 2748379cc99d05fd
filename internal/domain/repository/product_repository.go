package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrDocumentNotFound is returned when a document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// ErrCharacteristicNotFound is returned when a characteristic does not exist.
var ErrCharacteristicNotFound = errors.New("characteristic not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, product *entity.Product) error
}

// DocumentRepository defines the standard operations for document persistence.
type DocumentRepository interface {
	List(ctx context.Context) ([]*entity.Document, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Document, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Create(ctx context.Context, document *entity.Document) error
	Update(ctx context.Context, document *entity.Document) error
	SoftDelete(ctx context.Context, document *entity.Document) error
}

// CharacteristicRepository defines the standard operations for characteristic persistence.
type CharacteristicRepository interface {
	List(ctx context.Context) ([]*entity.Characteristic, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Characteristic, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Characteristic, error)
	Create(ctx context.Context, characteristic *entity.Characteristic) error
	Update(ctx context.Context, characteristic *entity.Characteristic) error
	SoftDelete(ctx context.Context, characteristic *entity.Characteristic) error
}
