package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *productService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Product, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewProductList); err != nil {
		return nil, err
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Get assembles the composite product payload: the product together with
// its category, currency, and non-deleted documents and characteristics.
func (srv *productService) Get(ctx context.Context, actorID, id uuid.UUID) (*usecase.ProductDetail, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewProduct); err != nil {
		return nil, err
	}

	detail := &usecase.ProductDetail{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}
		detail.Product = product

		if product.CategoryID != nil {
			category, err := repoFactory.CategoryRepo().FindByID(ctx, *product.CategoryID)
			if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(err, "failed to find product category")
			}
			detail.Category = category
		}

		if product.CurrencyID != nil {
			currency, err := repoFactory.CurrencyRepo().FindByID(ctx, *product.CurrencyID)
			if err != nil && !errors.Is(err, repository.ErrCurrencyNotFound) {
				return errors.Wrap(err, "failed to find product currency")
			}
			detail.Currency = currency
		}

		documents, err := repoFactory.DocumentRepo().ListByProduct(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list product documents")
		}
		detail.Documents = documents

		characteristics, err := repoFactory.CharacteristicRepo().ListByProduct(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list product characteristics")
		}
		detail.Characteristics = characteristics

		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// Create registers a catalog entry. A new product is always unpublished
// regardless of the payload; only Validate can flip the status.
func (srv *productService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateProduct); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		CurrencyID:  input.CurrencyID,
		Status:      false,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.CategoryID != nil {
			if _, err := repoFactory.CategoryRepo().FindByID(ctx, *input.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find category")
			}
		}
		if input.CurrencyID != nil {
			if _, err := repoFactory.CurrencyRepo().FindByID(ctx, *input.CurrencyID); err != nil {
				if errors.Is(err, repository.ErrCurrencyNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find currency")
			}
		}

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateProduct); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.CategoryID != nil {
			if _, err := repoFactory.CategoryRepo().FindByID(ctx, *input.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find category")
			}
			found.CategoryID = input.CategoryID
		}
		if input.CurrencyID != nil {
			if _, err := repoFactory.CurrencyRepo().FindByID(ctx, *input.CurrencyID); err != nil {
				if errors.Is(err, repository.ErrCurrencyNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find currency")
			}
			found.CurrencyID = input.CurrencyID
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteProduct); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		return productRepo.SoftDelete(ctx, product)
	})
}

// Validate runs the publication checklist in a fixed order and stops at the
// first unmet requirement: category, currency, at least one document, at
// least one image, a main image among the images, and at least one
// characteristic. Passing every check publishes the product.
func (srv *productService) Validate(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermValidateProduct); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		if product.CategoryID == nil {
			return errors.WithStack(domainerrors.ErrProductNoCategory)
		}
		if product.CurrencyID == nil {
			return errors.WithStack(domainerrors.ErrProductNoCurrency)
		}

		documents, err := repoFactory.DocumentRepo().ListByProduct(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list product documents")
		}
		if len(documents) == 0 {
			return errors.WithStack(domainerrors.ErrProductNoDocument)
		}

		hasImage := false
		hasMainImage := false
		for _, document := range documents {
			if document.Type != entity.DocumentImage {
				continue
			}
			hasImage = true
			if document.IsMain {
				hasMainImage = true
			}
		}
		if !hasImage {
			return errors.WithStack(domainerrors.ErrProductNoImage)
		}
		if !hasMainImage {
			return errors.WithStack(domainerrors.ErrProductNoMainImage)
		}

		characteristics, err := repoFactory.CharacteristicRepo().ListByProduct(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list product characteristics")
		}
		if len(characteristics) == 0 {
			return errors.WithStack(domainerrors.ErrProductNoCharacteristics)
		}

		product.Status = true

		return productRepo.Update(ctx, product)
	})
}
