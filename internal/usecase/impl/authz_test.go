package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_NilActorDenied(t *testing.T) {
	store := newMemStore()
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	_, err := authz.Authorize(context.Background(), uuid.Nil, entity.CombinatorAND, entity.PermViewClientAll)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthorize_UnknownActorDenied(t *testing.T) {
	store := newMemStore()
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	_, err := authz.Authorize(context.Background(), uuid.New(), entity.CombinatorAND, entity.PermViewClientAll)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthorize_DeletedActorDenied(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewClientAll)
	now := time.Now()
	actor.DeletedAt = &now

	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	_, err := authz.Authorize(context.Background(), actor.ID, entity.CombinatorAND, entity.PermViewClientAll)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthorize_MissingPermissionDenied(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewClient)

	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	_, err := authz.Authorize(context.Background(), actor.ID, entity.CombinatorAND, entity.PermViewClientAll)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthorize_GrantedReturnsActor(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewClientAll)

	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	got, err := authz.Authorize(context.Background(), actor.ID, entity.CombinatorAND, entity.PermViewClientAll)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, got.ID)
}

func TestAuthorize_OrCombinatorAcceptsEither(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermResetPasswordSelf)

	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	_, err := authz.Authorize(context.Background(), actor.ID, entity.CombinatorOR,
		entity.PermResetPassword, entity.PermResetPasswordSelf)
	assert.NoError(t, err)
}
