// Package impl contains the application-specific business rules
// implementations: the permission gate, the per-entity lifecycle services,
// and the cross-entity workflows.
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

// authorizer implements the usecase.Authorizer interface. It is the single
// entry point for permission checks: load the actor with roles attached,
// evaluate the requested permissions, and fail closed on anything unusual.
type authorizer struct {
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// NewAuthorizer is the constructor for authorizer.
func NewAuthorizer(clientRepo repository.ClientRepository, logger *slog.Logger) usecase.Authorizer {
	return &authorizer{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Authorize resolves the actor and evaluates the permission list. The
// unauthorized error is uniform on purpose: a denied caller learns nothing
// about whether the actor or the target exists.
func (a *authorizer) Authorize(ctx context.Context, actorID uuid.UUID, comb entity.Combinator, perms ...entity.Permission) (*entity.Client, error) {
	if actorID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	actor, err := a.clientRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to load actor for permission check")
	}

	if actor.IsDeleted() {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if !actor.Roles.Evaluate(perms, comb) {
		a.logger.Debug("permission denied",
			slog.String("actorID", actorID.String()),
			slog.Any("permissions", perms),
		)

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return actor, nil
}
