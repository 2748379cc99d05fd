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

// characteristicService implements the CharacteristicUsecase interface.
type characteristicService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCharacteristicService is the constructor for characteristicService.
func NewCharacteristicService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.CharacteristicUsecase {
	return &characteristicService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *characteristicService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Characteristic, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCharacteristicList); err != nil {
		return nil, err
	}

	var characteristics []*entity.Characteristic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CharacteristicRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list characteristics")
		}
		characteristics = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return characteristics, nil
}

func (srv *characteristicService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Characteristic, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCharacteristic); err != nil {
		return nil, err
	}

	var characteristic *entity.Characteristic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CharacteristicRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCharacteristicNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find characteristic")
		}
		characteristic = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return characteristic, nil
}

func (srv *characteristicService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCharacteristicInput) (*entity.Characteristic, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateCharacteristic); err != nil {
		return nil, err
	}

	characteristic := &entity.Characteristic{
		Key:       input.Key,
		Value:     input.Value,
		ProductID: input.ProductID,
		ParentID:  input.ParentID,
		Status:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}
		if input.ParentID != nil {
			if _, err := repoFactory.CharacteristicRepo().FindByID(ctx, *input.ParentID); err != nil {
				if errors.Is(err, repository.ErrCharacteristicNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find parent characteristic")
			}
		}

		return repoFactory.CharacteristicRepo().Create(ctx, characteristic)
	})
	if err != nil {
		return nil, err
	}

	return characteristic, nil
}

func (srv *characteristicService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCharacteristicInput) (*entity.Characteristic, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateCharacteristic); err != nil {
		return nil, err
	}

	var characteristic *entity.Characteristic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characteristicRepo := repoFactory.CharacteristicRepo()

		found, err := characteristicRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCharacteristicNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find characteristic")
		}

		if input.Key != nil {
			found.Key = *input.Key
		}
		if input.Value != nil {
			found.Value = *input.Value
		}

		if err := characteristicRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update characteristic")
		}
		characteristic = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return characteristic, nil
}

func (srv *characteristicService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteCharacteristic); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characteristicRepo := repoFactory.CharacteristicRepo()

		characteristic, err := characteristicRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCharacteristicNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find characteristic")
		}

		return characteristicRepo.SoftDelete(ctx, characteristic)
	})
}
