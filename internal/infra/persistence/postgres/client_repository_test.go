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

func TestClientRepository_CreateAndFindWithRoles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	permRepo := NewPermissionRepository(db)
	roleRepo := NewRoleRepository(db)
	clientRepo := NewClientRepository(db)

	perm := &entity.PermissionGrant{Name: entity.PermViewClient, Active: true}
	require.NoError(t, permRepo.Create(ctx, perm))

	role := &entity.Role{
		Name:        "support-agent",
		Active:      true,
		Permissions: []entity.PermissionGrant{*perm},
	}
	require.NoError(t, roleRepo.Create(ctx, role))

	client := &entity.Client{
		Email:        "agent@example.com",
		PhoneNumber:  "+15550001111",
		PasswordHash: "hash",
		Name:         "Agent",
		Active:       true,
		Roles:        entity.Roles{*role},
	}
	require.NoError(t, clientRepo.Create(ctx, client))
	require.NotEqual(t, uuid.Nil, client.ID)

	found, err := clientRepo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "agent@example.com", found.Email)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, "support-agent", found.Roles[0].Name)
	require.Len(t, found.Roles[0].Permissions, 1)
	assert.Equal(t, entity.PermViewClient, found.Roles[0].Permissions[0].Name)
}

func TestClientRepository_FindByEmailExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clientRepo := NewClientRepository(db)

	client := &entity.Client{Email: "gone@example.com", Active: true}
	require.NoError(t, clientRepo.Create(ctx, client))
	require.NoError(t, clientRepo.SoftDelete(ctx, client))

	_, err := clientRepo.FindByEmail(ctx, "gone@example.com")
	assert.ErrorIs(t, err, repository.ErrClientNotFound)

	// FindByID keeps returning the deleted row for auditing.
	found, err := clientRepo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.DeletedAt)
	assert.False(t, found.Active)
}

func TestClientRepository_ListExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clientRepo := NewClientRepository(db)

	kept := &entity.Client{Email: "kept@example.com", Active: true}
	require.NoError(t, clientRepo.Create(ctx, kept))

	deleted := &entity.Client{Email: "deleted@example.com", Active: true}
	require.NoError(t, clientRepo.Create(ctx, deleted))
	require.NoError(t, clientRepo.SoftDelete(ctx, deleted))

	clients, err := clientRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "kept@example.com", clients[0].Email)
}

func TestClientRepository_UpdateReplacesRoles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	roleRepo := NewRoleRepository(db)
	clientRepo := NewClientRepository(db)

	first := &entity.Role{Name: "first", Active: true}
	require.NoError(t, roleRepo.Create(ctx, first))
	second := &entity.Role{Name: "second", Active: true}
	require.NoError(t, roleRepo.Create(ctx, second))

	client := &entity.Client{Email: "roles@example.com", Active: true, Roles: entity.Roles{*first}}
	require.NoError(t, clientRepo.Create(ctx, client))

	client.Roles = entity.Roles{*second}
	require.NoError(t, clientRepo.Update(ctx, client))

	found, err := clientRepo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, "second", found.Roles[0].Name)
}
