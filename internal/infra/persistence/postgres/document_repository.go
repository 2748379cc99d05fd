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

// documentRepository implements the domain's DocumentRepository interface using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// List retrieves all non-deleted documents.
func (repo *documentRepository) List(ctx context.Context) ([]*entity.Document, error) {
	var models []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	documents := make([]*entity.Document, 0, len(models))
	for _, m := range models {
		documents = append(documents, toDocumentDomain(m))
	}

	return documents, nil
}

// ListByProduct retrieves the non-deleted documents of one product.
func (repo *documentRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Document, error) {
	var models []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND deleted_at IS NULL", productID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents by product")
	}

	documents := make([]*entity.Document, 0, len(models))
	for _, m := range models {
		documents = append(documents, toDocumentDomain(m))
	}

	return documents, nil
}

// FindByID retrieves a single document by ID, soft-deleted rows included.
func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var m model.DocumentModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(&m), nil
}

// Create persists a new document record. The stored file must already be
// in the file store; Path carries its locator.
func (repo *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	m := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = m.ID
	document.CreatedAt = m.CreatedAt
	document.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing document record.
func (repo *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	m := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update document")
	}

	document.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the document deleted and clears the status flag. The
// caller is responsible for relocating the stored file first.
func (repo *documentRepository) SoftDelete(ctx context.Context, document *entity.Document) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("id = ?", document.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"status":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete document")
	}

	document.DeletedAt = &now
	document.Status = false
	document.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	if data == nil {
		return nil
	}

	return &entity.Document{
		ID:        data.ID,
		Name:      data.Name,
		Path:      data.Path,
		ProductID: data.ProductID,
		Type:      entity.DocumentType(data.Type),
		Size:      data.Size,
		Dimension: data.Dimension,
		Status:    data.Status,
		IsMain:    data.IsMain,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}

func fromDocumentDomain(data *entity.Document) *model.DocumentModel {
	if data == nil {
		return nil
	}

	return &model.DocumentModel{
		ID:        data.ID,
		Name:      data.Name,
		Path:      data.Path,
		ProductID: data.ProductID,
		Type:      string(data.Type),
		Size:      data.Size,
		Dimension: data.Dimension,
		Status:    data.Status,
		IsMain:    data.IsMain,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}
