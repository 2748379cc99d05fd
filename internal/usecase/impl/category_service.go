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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *categoryService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Category, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCategoryList); err != nil {
		return nil, err
	}

	var categories []*entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Category, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCategory); err != nil {
		return nil, err
	}

	var category *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateCategory); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CategoryRepo().Create(ctx, category)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateCategory); err != nil {
		return nil, err
	}

	var category *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		found, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find category")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.ParentID != nil {
			found.ParentID = input.ParentID
		}

		if err := categoryRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteCategory); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find category")
		}

		return categoryRepo.SoftDelete(ctx, category)
	})
}
