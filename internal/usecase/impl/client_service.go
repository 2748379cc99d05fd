package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	authz        usecase.Authorizer
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	Authz        usecase.Authorizer
	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		authz:        params.Authz,
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// List retrieves all non-deleted clients.
func (srv *clientService) List(ctx context.Context, actorID uuid.UUID) ([]*entity.Client, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewClientAll); err != nil {
		return nil, err
	}

	var clients []*entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ClientRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list clients")
		}
		clients = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// Get retrieves a single client by id, soft-deleted included.
func (srv *clientService) Get(ctx context.Context, actorID, id uuid.UUID) (*entity.Client, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermViewClient); err != nil {
		return nil, err
	}

	var client *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ClientRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}
		client = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Create registers a new client on behalf of an administrator.
func (srv *clientService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateClientInput) (*entity.Client, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermCreateClient); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	client := &entity.Client{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Name:         input.Name,
		DateOfBirth:  input.DateOfBirth,
		Address:      input.Address,
		Bio:          input.Bio,
		Gender:       entity.Gender(input.Gender),
		Active:       true,
	}
	for _, roleID := range input.RoleIDs {
		client.Roles = append(client.Roles, entity.Role{ID: roleID})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClientRepo().Create(ctx, client)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	return client, nil
}

// Update applies a partial update to the identified client.
func (srv *clientService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateClientInput) (*entity.Client, error) {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateClient); err != nil {
		return nil, err
	}

	return srv.update(ctx, id, input)
}

// SelfUpdate applies a partial update to the actor's own record.
func (srv *clientService) SelfUpdate(ctx context.Context, actorID uuid.UUID, input *usecase.UpdateClientInput) (*entity.Client, error) {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermUpdateClientSelf)
	if err != nil {
		return nil, err
	}

	return srv.update(ctx, actor.ID, input)
}

func (srv *clientService) update(ctx context.Context, id uuid.UUID, input *usecase.UpdateClientInput) (*entity.Client, error) {
	var client *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		found, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}

		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.PhoneNumber != nil {
			found.PhoneNumber = *input.PhoneNumber
		}
		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.DateOfBirth != nil {
			found.DateOfBirth = input.DateOfBirth
		}
		if input.Address != nil {
			found.Address = *input.Address
		}
		if input.Bio != nil {
			found.Bio = *input.Bio
		}
		if input.Gender != nil {
			found.Gender = entity.Gender(*input.Gender)
		}
		if input.RoleIDs != nil {
			found.Roles = nil
			for _, roleID := range input.RoleIDs {
				found.Roles = append(found.Roles, entity.Role{ID: roleID})
			}
		}

		if err := clientRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update client")
		}
		client = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Delete soft-deletes the identified client.
func (srv *clientService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteClient); err != nil {
		return err
	}

	return srv.softDelete(ctx, id)
}

// SelfDelete soft-deletes the actor's own record.
func (srv *clientService) SelfDelete(ctx context.Context, actorID uuid.UUID) error {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteClientSelf)
	if err != nil {
		return err
	}

	return srv.softDelete(ctx, actor.ID)
}

// DeleteList soft-deletes every client in the id list inside one transaction.
func (srv *clientService) DeleteList(ctx context.Context, actorID uuid.UUID, ids []uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermDeleteClientAll); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()
		for _, id := range ids {
			client, err := clientRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrClientNotFound) {
					return errors.WithStack(domainerrors.ErrNotFound)
				}

				return errors.Wrap(err, "failed to find client")
			}
			if err := clientRepo.SoftDelete(ctx, client); err != nil {
				return errors.Wrap(err, "failed to delete client")
			}
		}

		return nil
	})
}

func (srv *clientService) softDelete(ctx context.Context, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}

		return clientRepo.SoftDelete(ctx, client)
	})
}

// ResetPassword replaces the identified client's password with the global
// default password.
func (srv *clientService) ResetPassword(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorAND, entity.PermResetPassword); err != nil {
		return err
	}

	return srv.applyDefaultPassword(ctx, id)
}

// SelfResetPassword resets the actor's own password to the global default.
// Either the admin reset permission or the self variant is accepted.
func (srv *clientService) SelfResetPassword(ctx context.Context, actorID uuid.UUID) error {
	actor, err := srv.authz.Authorize(ctx, actorID, entity.CombinatorOR,
		entity.PermResetPassword, entity.PermResetPasswordSelf)
	if err != nil {
		return err
	}

	return srv.applyDefaultPassword(ctx, actor.ID)
}

func (srv *clientService) applyDefaultPassword(ctx context.Context, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gv, err := repoFactory.GlobalVarRepo().FindByKey(ctx, entity.GlobalVarDefaultPassword)
		if err != nil {
			if errors.Is(err, repository.ErrGlobalVarNotFound) {
				return errors.WithStack(domainerrors.ErrDefaultPasswordUnset)
			}

			return errors.Wrap(err, "failed to load default password")
		}

		clientRepo := repoFactory.ClientRepo()
		client, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}

		hash, err := srv.hasher.Hash(gv.Value)
		if err != nil {
			return errors.WithStack(domainerrors.ErrPasswordHashFailed)
		}
		client.PasswordHash = hash

		return clientRepo.Update(ctx, client)
	})
}

// Login authenticates by email or phone number and returns an access token.
func (srv *clientService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Password == "" || (input.Email == "" && input.PhoneNumber == "") {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"Email or phone number and password are required"))
	}

	var client *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		var found *entity.Client
		var err error
		if input.Email != "" {
			found, err = clientRepo.FindByEmail(ctx, input.Email)
		} else {
			found, err = clientRepo.FindByPhone(ctx, input.PhoneNumber)
		}
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find client")
		}
		client = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !client.Active {
		return nil, errors.WithStack(domainerrors.ErrClientInactive)
	}
	if !srv.hasher.Check(input.Password, client.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.GenerateAccessToken(client.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Info("client logged in", slog.String("clientID", client.ID.String()))

	return &usecase.LoginOutput{Token: token}, nil
}

// Register creates a new client from the open registration endpoint.
func (srv *clientService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Client, error) {
	if input.Email == "" && input.PhoneNumber == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"Email or phone number is required"))
	}
	if input.Password != input.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	client := &entity.Client{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		var findErr error
		if input.Email != "" {
			_, findErr = clientRepo.FindByEmail(ctx, input.Email)
		} else {
			_, findErr = clientRepo.FindByPhone(ctx, input.PhoneNumber)
		}
		if findErr == nil {
			return errors.WithStack(domainerrors.ErrClientExists)
		}
		if !errors.Is(findErr, repository.ErrClientNotFound) {
			return errors.Wrap(findErr, "failed to check for existing client")
		}

		return clientRepo.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("client registered", slog.String("clientID", client.ID.String()))

	return client, nil
}
