package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput creates a catalog entry. Whatever status the payload
// claims, a new product always starts unpublished.
type CreateProductInput struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" validate:"gte=0"`
	CategoryID  *uuid.UUID `json:"category"`
	CurrencyID  *uuid.UUID `json:"currency"`
}

// UpdateProductInput carries a partial product update.
type UpdateProductInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *uuid.UUID `json:"category"`
	CurrencyID  *uuid.UUID `json:"currency"`
}

// ProductDetail is the composite retrieve payload: the product together
// with its category, currency and non-deleted owned collections.
type ProductDetail struct {
	Product         *entity.Product          `json:"product"`
	Category        *entity.Category         `json:"category"`
	Currency        *entity.Currency         `json:"currency"`
	Documents       []*entity.Document       `json:"documents"`
	Characteristics []*entity.Characteristic `json:"characteristics"`
}

// ProductUsecase exposes the product module, including the explicit
// validation workflow that publishes a product.
type ProductUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Product, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*ProductDetail, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error

	// Validate runs the ordered publication checklist and flips the product
	// status to true when every requirement is met.
	Validate(ctx context.Context, actorID, id uuid.UUID) error
}

// CreateDocumentInput uploads a file and attaches it to a product.
type CreateDocumentInput struct {
	Name      string    `json:"name" validate:"required"`
	ProductID uuid.UUID `json:"product" validate:"required"`
	Type      string    `json:"document_type" validate:"required,oneof=Image Video PDF"`
	Size      int64     `json:"size"`
	Dimension string    `json:"dimension"`
	IsMain    bool      `json:"is_main"`
	Content   io.Reader `json:"-"`
}

// UpdateDocumentInput carries a partial document metadata update.
type UpdateDocumentInput struct {
	Name      *string `json:"name"`
	Dimension *string `json:"dimension"`
	IsMain    *bool   `json:"is_main"`
}

// DocumentUsecase exposes the document module. Delete relocates the stored
// file into the deleted area before the record is soft-deleted; a failed
// relocation aborts the whole delete.
type DocumentUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Document, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Document, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateDocumentInput) (*entity.Document, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateDocumentInput) (*entity.Document, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// CreateCharacteristicInput attaches a key/value attribute to a product.
type CreateCharacteristicInput struct {
	Key       string     `json:"key" validate:"required"`
	Value     string     `json:"value" validate:"required"`
	ProductID uuid.UUID  `json:"product" validate:"required"`
	ParentID  *uuid.UUID `json:"parent"`
}

// UpdateCharacteristicInput carries a partial characteristic update.
type UpdateCharacteristicInput struct {
	Key   *string `json:"key"`
	Value *string `json:"value"`
}

// CharacteristicUsecase exposes the characteristic module.
type CharacteristicUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]*entity.Characteristic, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Characteristic, error)
	Create(ctx context.Context, actorID uuid.UUID, input *CreateCharacteristicInput) (*entity.Characteristic, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateCharacteristicInput) (*entity.Characteristic, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
