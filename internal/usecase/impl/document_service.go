package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	fileStore service.FileStore
	logger    *slog.Logger
}

// DocumentServiceParams holds dependencies for documentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	Authz     usecase.Authorizer
	TxManager repository.TransactionManager
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		authz:     params.Authz,
		txManager: params.TxManager,
		fileStore: params.FileStore,
		logger:    params.Logger,
	}
}

func (srv *documentService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Document, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewDocumentList); err != nil {
		return nil, err
	}

	var documents []*entity.Document
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DocumentRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list documents")
		}
		documents = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return documents, nil
}

func (srv *documentService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Document, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewDocument); err != nil {
		return nil, err
	}

	var document *entity.Document
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DocumentRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find document")
		}
		document = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return document, nil
}

// Create stores the uploaded content first and only then writes the record,
// so a storage failure never leaves a record pointing at nothing.
func (srv *documentService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateDocumentInput) (*entity.Document, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateDocument); err != nil {
		return nil, err
	}

	docType := entity.DocumentType(input.Type)
	if !docType.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	locator, err := srv.fileStore.Store(ctx, input.Name, input.Content)
	if err != nil {
		return nil, domainerrors.NewStorageError(err)
	}

	document := &entity.Document{
		Name:      input.Name,
		Path:      locator,
		ProductID: input.ProductID,
		Type:      docType,
		Size:      input.Size,
		Dimension: input.Dimension,
		Status:    true,
		IsMain:    input.IsMain,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		return repoFactory.DocumentRepo().Create(ctx, document)
	})
	if err != nil {
		// The record never existed, so the stored file is orphaned; best
		// effort cleanup, the create error is what the caller needs.
		if cleanupErr := srv.fileStore.Delete(ctx, locator); cleanupErr != nil {
			srv.logger.Warn("failed to clean up stored file after create failure",
				slog.String("locator", locator),
				slog.Any("error", cleanupErr),
			)
		}

		return nil, err
	}

	return document, nil
}

func (srv *documentService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateDocumentInput) (*entity.Document, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateDocument); err != nil {
		return nil, err
	}

	var document *entity.Document
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documentRepo := repoFactory.DocumentRepo()

		found, err := documentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find document")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Dimension != nil {
			found.Dimension = *input.Dimension
		}
		if input.IsMain != nil {
			found.IsMain = *input.IsMain
		}

		if err := documentRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update document")
		}
		document = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return document, nil
}

// Delete relocates the stored file into the deleted area before touching the
// record. A failed relocation aborts the delete entirely, so the record and
// the stored bytes never disagree about whether the document exists.
func (srv *documentService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteDocument); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documentRepo := repoFactory.DocumentRepo()

		document, err := documentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find document")
		}

		if err := srv.fileStore.Discard(ctx, document.Path); err != nil {
			return domainerrors.NewStorageError(err)
		}

		return documentRepo.SoftDelete(ctx, document)
	})
}
