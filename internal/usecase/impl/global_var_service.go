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

// globalVarService implements the GlobalVarUsecase interface.
type globalVarService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewGlobalVarService is the constructor for globalVarService.
func NewGlobalVarService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.GlobalVarUsecase {
	return &globalVarService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *globalVarService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.GlobalVar, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewGlobalVarList); err != nil {
		return nil, err
	}

	var vars []*entity.GlobalVar
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GlobalVarRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list global variables")
		}
		vars = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vars, nil
}

func (srv *globalVarService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.GlobalVar, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewGlobalVar); err != nil {
		return nil, err
	}

	var gv *entity.GlobalVar
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GlobalVarRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGlobalVarNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find global variable")
		}
		gv = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return gv, nil
}

func (srv *globalVarService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateGlobalVarInput) (*entity.GlobalVar, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateGlobalVar); err != nil {
		return nil, err
	}

	gv := &entity.GlobalVar{
		Key:         input.Key,
		Description: input.Description,
		Value:       input.Value,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.GlobalVarRepo().Create(ctx, gv)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create global variable")
	}

	return gv, nil
}

func (srv *globalVarService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateGlobalVarInput) (*entity.GlobalVar, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateGlobalVar); err != nil {
		return nil, err
	}

	var gv *entity.GlobalVar
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		globalVarRepo := repoFactory.GlobalVarRepo()

		found, err := globalVarRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGlobalVarNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find global variable")
		}

		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Value != nil {
			found.Value = *input.Value
		}

		if err := globalVarRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update global variable")
		}
		gv = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return gv, nil
}

func (srv *globalVarService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteGlobalVar); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		globalVarRepo := repoFactory.GlobalVarRepo()

		gv, err := globalVarRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGlobalVarNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find global variable")
		}

		return globalVarRepo.SoftDelete(ctx, gv)
	})
}
