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

// roleService implements the RoleUsecase interface.
type roleService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.RoleUsecase {
	return &roleService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *roleService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Role, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewRoleList); err != nil {
		return nil, err
	}

	var roles []*entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RoleRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list roles")
		}
		roles = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return roles, nil
}

func (srv *roleService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Role, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewRole); err != nil {
		return nil, err
	}

	var role *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RoleRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find role")
		}
		role = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// Create builds a new role. A role cannot exist without permissions, so an
// empty permission list is rejected before anything is written.
func (srv *roleService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateRoleInput) (*entity.Role, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateRole); err != nil {
		return nil, err
	}

	if len(input.PermissionIDs) == 0 {
		return nil, errors.WithStack(domainerrors.ErrRoleWithoutPermissions)
	}

	role := &entity.Role{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perms, err := repoFactory.PermissionRepo().FindByIDs(ctx, input.PermissionIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve permissions")
		}
		if len(perms) != len(input.PermissionIDs) {
			return errors.WithStack(domainerrors.ErrNotFound)
		}
		for _, perm := range perms {
			role.Permissions = append(role.Permissions, *perm)
		}

		return repoFactory.RoleRepo().Create(ctx, role)
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

func (srv *roleService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateRoleInput) (*entity.Role, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateRole); err != nil {
		return nil, err
	}

	var role *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		found, err := roleRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find role")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Active != nil {
			found.Active = *input.Active
		}
		if input.PermissionIDs != nil {
			perms, err := repoFactory.PermissionRepo().FindByIDs(ctx, input.PermissionIDs)
			if err != nil {
				return errors.Wrap(err, "failed to resolve permissions")
			}
			found.Permissions = nil
			for _, perm := range perms {
				found.Permissions = append(found.Permissions, *perm)
			}
		}

		if err := roleRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update role")
		}
		role = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

func (srv *roleService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteRole); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		role, err := roleRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find role")
		}

		return roleRepo.SoftDelete(ctx, role)
	})
}
