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

// currencyService implements the CurrencyUsecase interface.
type currencyService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCurrencyService is the constructor for currencyService.
func NewCurrencyService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.CurrencyUsecase {
	return &currencyService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *currencyService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Currency, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCurrencyList); err != nil {
		return nil, err
	}

	var currencies []*entity.Currency
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CurrencyRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list currencies")
		}
		currencies = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return currencies, nil
}

func (srv *currencyService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Currency, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewCurrency); err != nil {
		return nil, err
	}

	var currency *entity.Currency
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CurrencyRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCurrencyNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find currency")
		}
		currency = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return currency, nil
}

func (srv *currencyService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCurrencyInput) (*entity.Currency, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateCurrency); err != nil {
		return nil, err
	}

	currency := &entity.Currency{
		Code:   input.Code,
		Name:   input.Name,
		Symbol: input.Symbol,
		Status: true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CurrencyRepo().Create(ctx, currency)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create currency")
	}

	return currency, nil
}

func (srv *currencyService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCurrencyInput) (*entity.Currency, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateCurrency); err != nil {
		return nil, err
	}

	var currency *entity.Currency
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		currencyRepo := repoFactory.CurrencyRepo()

		found, err := currencyRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCurrencyNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find currency")
		}

		if input.Code != nil {
			found.Code = *input.Code
		}
		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Symbol != nil {
			found.Symbol = *input.Symbol
		}

		if err := currencyRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update currency")
		}
		currency = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return currency, nil
}

func (srv *currencyService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteCurrency); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		currencyRepo := repoFactory.CurrencyRepo()

		currency, err := currencyRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCurrencyNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find currency")
		}

		return currencyRepo.SoftDelete(ctx, currency)
	})
}
