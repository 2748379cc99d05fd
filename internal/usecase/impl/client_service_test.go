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

func newClientService(store *memStore) usecase.ClientUsecase {
	authz := NewAuthorizer(&memClientRepo{store}, testLogger())

	return NewClientService(ClientServiceParams{
		Authz:        authz,
		TxManager:    &memTxManager{store},
		Hasher:       plainHasher{},
		TokenService: staticTokenService{},
		Logger:       testLogger(),
	})
}

func seedCredentialClient(store *memStore, email, phone, password string, active bool) *entity.Client {
	client := &entity.Client{
		ID:           uuid.New(),
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: "hashed:" + password,
		Active:       active,
	}
	store.clients[client.ID] = client

	return client
}

func TestLogin_ByEmail(t *testing.T) {
	store := newMemStore()
	client := seedCredentialClient(store, "kim@example.com", "", "s3cretpass", true)

	out, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		Email:    "kim@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+client.ID.String(), out.Token)
}

func TestLogin_ByPhone(t *testing.T) {
	store := newMemStore()
	seedCredentialClient(store, "", "5551234", "s3cretpass", true)

	_, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "5551234",
		Password:    "s3cretpass",
	})
	assert.NoError(t, err)
}

func TestLogin_UnknownClient(t *testing.T) {
	store := newMemStore()

	_, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		Email:    "kim@example.com",
		Password: "s3cretpass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestLogin_InactiveClient(t *testing.T) {
	store := newMemStore()
	seedCredentialClient(store, "kim@example.com", "", "s3cretpass", false)

	_, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		Email:    "kim@example.com",
		Password: "s3cretpass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrClientInactive))
	assert.EqualError(t, errors.Cause(err), "User is not active")
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newMemStore()
	seedCredentialClient(store, "kim@example.com", "", "s3cretpass", true)

	_, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		Email:    "kim@example.com",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.EqualError(t, errors.Cause(err), "Invalid password")
}

func TestLogin_MissingIdentifier(t *testing.T) {
	store := newMemStore()

	_, err := newClientService(store).Login(context.Background(), &usecase.LoginInput{
		Password: "s3cretpass",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	store := newMemStore()

	_, err := newClientService(store).Register(context.Background(), &usecase.RegisterInput{
		Email:           "kim@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "different",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	assert.EqualError(t, errors.Cause(err), "Passwords do not match")
}

func TestRegister_ExistingClient(t *testing.T) {
	store := newMemStore()
	seedCredentialClient(store, "kim@example.com", "", "whatever", true)

	_, err := newClientService(store).Register(context.Background(), &usecase.RegisterInput{
		Email:           "kim@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrClientExists))
	assert.EqualError(t, errors.Cause(err), "User already exists")
}

func TestRegister_CreatesActiveClient(t *testing.T) {
	store := newMemStore()

	client, err := newClientService(store).Register(context.Background(), &usecase.RegisterInput{
		Email:           "kim@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	})
	require.NoError(t, err)
	assert.True(t, client.Active)
	assert.Equal(t, "hashed:s3cretpass", client.PasswordHash)
	assert.Contains(t, store.clients, client.ID)
}

func TestResetPassword_DefaultUnset(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermResetPassword)
	target := seedCredentialClient(store, "kim@example.com", "", "oldpass", true)

	err := newClientService(store).ResetPassword(context.Background(), actor.ID, target.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDefaultPasswordUnset))
	assert.EqualError(t, errors.Cause(err), "Default password not set in global variables")
}

func TestResetPassword_AppliesDefault(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermResetPassword)
	target := seedCredentialClient(store, "kim@example.com", "", "oldpass", true)
	gv := &entity.GlobalVar{ID: uuid.New(), Key: entity.GlobalVarDefaultPassword, Value: "changeme1"}
	store.globalVars[gv.ID] = gv

	require.NoError(t, newClientService(store).ResetPassword(context.Background(), actor.ID, target.ID))
	assert.Equal(t, "hashed:changeme1", store.clients[target.ID].PasswordHash)
}

func TestSelfResetPassword_PersistsChange(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermResetPasswordSelf)
	actor.PasswordHash = "hashed:oldpass"
	gv := &entity.GlobalVar{ID: uuid.New(), Key: entity.GlobalVarDefaultPassword, Value: "changeme1"}
	store.globalVars[gv.ID] = gv

	require.NoError(t, newClientService(store).SelfResetPassword(context.Background(), actor.ID))
	assert.Equal(t, "hashed:changeme1", store.clients[actor.ID].PasswordHash)
}

func TestDeleteList_SoftDeletesEveryone(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermDeleteClientAll)
	a := seedCredentialClient(store, "a@example.com", "", "pw", true)
	b := seedCredentialClient(store, "b@example.com", "", "pw", true)

	err := newClientService(store).DeleteList(context.Background(), actor.ID, []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	assert.NotNil(t, store.clients[a.ID].DeletedAt)
	assert.NotNil(t, store.clients[b.ID].DeletedAt)
	assert.False(t, store.clients[a.ID].Active)
}

func TestSelfDelete_TargetsActor(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermDeleteClientSelf)

	require.NoError(t, newClientService(store).SelfDelete(context.Background(), actor.ID))
	assert.NotNil(t, store.clients[actor.ID].DeletedAt)
}

func TestClientList_ExcludesDeleted(t *testing.T) {
	store := newMemStore()
	actor := seedActor(store, entity.PermViewClientAll)
	kept := seedCredentialClient(store, "a@example.com", "", "pw", true)
	gone := seedCredentialClient(store, "b@example.com", "", "pw", true)
	gone.DeletedAt = deletedTime()

	clients, err := newClientService(store).List(context.Background(), actor.ID)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, kept.ID)
	assert.NotContains(t, ids, gone.ID)
}
