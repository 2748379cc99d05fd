package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleService(store *memStore) usecase.RoleUsecase {
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	return NewRoleService(authz, &memTxManager{store}, testLogger())
}

func TestRoleCreate_RequiresPermissions(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateRole)

	_, err := newRoleService(store).Create(context.Background(), actor.ID, &usecase.CreateRoleInput{
		Name: "manager",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleWithoutPermissions))
	assert.EqualError(t, errors.Cause(err), "To create a role, you need at least one permission")
	assert.Empty(t, store.roles)
}

func TestRoleCreate_UnknownPermission(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateRole)

	_, err := newRoleService(store).Create(context.Background(), actor.ID, &usecase.CreateRoleInput{
		Name:          "manager",
		PermissionIDs: []uuid.UUID{uuid.New()},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRoleCreate_AttachesGrants(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermCreateRole)
	grant := &entity.PermissionGrant{ID: uuid.New(), Name: entity.PermViewProduct, Active: true}
	store.permissions[grant.ID] = grant

	role, err := newRoleService(store).Create(context.Background(), actor.ID, &usecase.CreateRoleInput{
		Name:          "viewer",
		PermissionIDs: []uuid.UUID{grant.ID},
	})
	require.NoError(t, err)
	assert.True(t, role.Active)
	require.Len(t, role.Permissions, 1)
	assert.Equal(t, entity.PermViewProduct, role.Permissions[0].Name)
}

func TestRoleUpdate_ReplacesPermissionSet(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermUpdateRole)
	oldGrant := &entity.PermissionGrant{ID: uuid.New(), Name: entity.PermViewProduct}
	newGrant := &entity.PermissionGrant{ID: uuid.New(), Name: entity.PermCreateProduct}
	store.permissions[oldGrant.ID] = oldGrant
	store.permissions[newGrant.ID] = newGrant
	role := &entity.Role{ID: uuid.New(), Name: "viewer", Active: true, Permissions: []entity.PermissionGrant{*oldGrant}}
	store.roles[role.ID] = role

	got, err := newRoleService(store).Update(context.Background(), actor.ID, role.ID, &usecase.UpdateRoleInput{
		PermissionIDs: []uuid.UUID{newGrant.ID},
	})
	require.NoError(t, err)
	require.Len(t, got.Permissions, 1)
	assert.Equal(t, entity.PermCreateProduct, got.Permissions[0].Name)
}

func TestRoleDelete_SoftDeletes(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermDeleteRole)
	role := &entity.Role{ID: uuid.New(), Name: "viewer", Active: true}
	store.roles[role.ID] = role

	require.NoError(t, newRoleService(store).Delete(context.Background(), actor.ID, role.ID))
	assert.NotNil(t, store.roles[role.ID].DeletedAt)
}
