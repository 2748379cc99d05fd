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

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.PermissionUsecase {
	return &permissionService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *permissionService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.PermissionGrant, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewPermissionList); err != nil {
		return nil, err
	}

	var perms []*entity.PermissionGrant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PermissionRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list permissions")
		}
		perms = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return perms, nil
}

func (srv *permissionService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.PermissionGrant, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewPermission); err != nil {
		return nil, err
	}

	var perm *entity.PermissionGrant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PermissionRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPermissionNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find permission")
		}
		perm = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return perm, nil
}

func (srv *permissionService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreatePermissionInput) (*entity.PermissionGrant, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreatePermission); err != nil {
		return nil, err
	}

	perm := &entity.PermissionGrant{
		Name:        entity.Permission(input.Name),
		Description: input.Description,
		Active:      true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PermissionRepo().Create(ctx, perm)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create permission")
	}

	return perm, nil
}

func (srv *permissionService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdatePermissionInput) (*entity.PermissionGrant, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdatePermission); err != nil {
		return nil, err
	}

	var perm *entity.PermissionGrant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		found, err := permRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPermissionNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find permission")
		}

		if input.Name != nil {
			found.Name = entity.Permission(*input.Name)
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Active != nil {
			found.Active = *input.Active
		}

		if err := permRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update permission")
		}
		perm = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return perm, nil
}

func (srv *permissionService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeletePermission); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		perm, err := permRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPermissionNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find permission")
		}

		return permRepo.SoftDelete(ctx, perm)
	})
}
