// Package usecase defines the application-facing contracts: one interface
// per domain module, plus the input/output types they exchange with the
// delivery layer. The acting client is always passed explicitly; nothing
// is recovered from ambient state.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Authorizer is the gate in front of every operation: it resolves the
// actor's roles and decides whether the named permissions are granted.
// An unknown, deleted, or role-less actor is denied with the uniform
// unauthorized error, without touching whatever entity the operation
// targets.
type Authorizer interface {
	// Authorize loads the actor and evaluates the permission list under
	// the given combinator. On success it returns the loaded actor so the
	// caller can reuse it for self-targeted operations.
	Authorize(ctx context.Context, actorID uuid.UUID, comb entity.Combinator, perms ...entity.Permission) (*entity.Client, error)
}
