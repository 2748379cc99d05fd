package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalVarRepository_FindByKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	gvRepo := NewGlobalVarRepository(db)

	gv := &entity.GlobalVar{Key: entity.GlobalVarDefaultPassword, Value: "changeme"}
	require.NoError(t, gvRepo.Create(ctx, gv))

	found, err := gvRepo.FindByKey(ctx, entity.GlobalVarDefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, "changeme", found.Value)

	require.NoError(t, gvRepo.SoftDelete(ctx, gv))

	_, err = gvRepo.FindByKey(ctx, entity.GlobalVarDefaultPassword)
	assert.ErrorIs(t, err, repository.ErrGlobalVarNotFound)
}

func TestPermissionRepository_FindByIDsSkipsDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	permRepo := NewPermissionRepository(db)

	kept := &entity.PermissionGrant{Name: entity.PermCreateProduct, Active: true}
	require.NoError(t, permRepo.Create(ctx, kept))

	dropped := &entity.PermissionGrant{Name: entity.PermDeleteProduct, Active: true}
	require.NoError(t, permRepo.Create(ctx, dropped))
	require.NoError(t, permRepo.SoftDelete(ctx, dropped))

	perms, err := permRepo.FindByIDs(ctx, []uuid.UUID{kept.ID, dropped.ID})
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, entity.PermCreateProduct, perms[0].Name)
}
