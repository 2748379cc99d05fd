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

// supportService implements the SupportUsecase interface.
type supportService struct {
	authz     usecase.Authorizer
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(authz usecase.Authorizer, txManager repository.TransactionManager, logger *slog.Logger) usecase.SupportUsecase {
	return &supportService{
		authz:     authz,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *supportService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Support, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewSupportList); err != nil {
		return nil, err
	}

	var tickets []*entity.Support
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SupportRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list support tickets")
		}
		tickets = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func (srv *supportService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Support, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewSupport); err != nil {
		return nil, err
	}

	var ticket *entity.Support
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SupportRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupportNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find support ticket")
		}
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// Create opens a ticket. No permission is required: anonymous visitors may
// write in, and an authenticated caller is attached as the ticket's client.
func (srv *supportService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateSupportInput) (*entity.Support, error) {
	ticket := &entity.Support{
		Message:     input.Message,
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Status:      entity.SupportPending,
		ParentID:    input.ParentID,
	}
	if actorID != uuid.Nil {
		clientID := actorID
		ticket.ClientID = &clientID
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.ParentID != nil {
			if _, err := repoFactory.SupportRepo().FindByID(ctx, *input.ParentID); err != nil {
				if errors.Is(err, repository.ErrSupportNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find parent ticket")
			}
		}

		return repoFactory.SupportRepo().Create(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (srv *supportService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateSupportInput) (*entity.Support, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateSupport); err != nil {
		return nil, err
	}

	var ticket *entity.Support
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supportRepo := repoFactory.SupportRepo()

		found, err := supportRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupportNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find support ticket")
		}

		if input.Message != nil {
			found.Message = *input.Message
		}
		if input.FullName != nil {
			found.FullName = *input.FullName
		}
		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.PhoneNumber != nil {
			found.PhoneNumber = *input.PhoneNumber
		}

		if err := supportRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update support ticket")
		}
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// UpdateStatus moves a ticket through its handling states. It is a separate
// operation with its own permission so support staff can triage tickets they
// cannot otherwise edit.
func (srv *supportService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateSupportStatusInput) (*entity.Support, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateSupportStatus); err != nil {
		return nil, err
	}

	status := entity.SupportStatus(input.Status)
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	var ticket *entity.Support
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supportRepo := repoFactory.SupportRepo()

		found, err := supportRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupportNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find support ticket")
		}

		found.Status = status
		if err := supportRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update ticket status")
		}
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (srv *supportService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteSupport); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supportRepo := repoFactory.SupportRepo()

		ticket, err := supportRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupportNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find support ticket")
		}

		return supportRepo.SoftDelete(ctx, ticket)
	})
}
