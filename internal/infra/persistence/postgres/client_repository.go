package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientRepository implements the domain's ClientRepository interface using GORM.
// Clients are always loaded with roles and role permissions because every
// authorization check walks them.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// List retrieves all non-deleted clients with their role grants attached.
func (repo *clientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	var models []*model.ClientModel
	err := repo.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Where("deleted_at IS NULL").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(models))
	for _, m := range models {
		clients = append(clients, toClientDomain(m))
	}

	return clients, nil
}

// FindByID retrieves a single client by ID, soft-deleted rows included.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var m model.ClientModel
	err := repo.db.WithContext(ctx).
		Preload("Roles.Permissions").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(&m), nil
}

// FindByEmail retrieves a non-deleted client by email.
func (repo *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var m model.ClientModel
	err := repo.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Where("email = ? AND deleted_at IS NULL", email).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by email")
	}

	return toClientDomain(&m), nil
}

// FindByPhone retrieves a non-deleted client by phone number.
func (repo *clientRepository) FindByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	var m model.ClientModel
	err := repo.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Where("phone_number = ? AND deleted_at IS NULL", phone).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by phone")
	}

	return toClientDomain(&m), nil
}

// Create persists a new client. Role rows are linked through the join
// table, never upserted, so only existing roles can be attached.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	m := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Omit("Roles.*").Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrClientExists.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = m.ID
	client.CreatedAt = m.CreatedAt
	client.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing client and replaces its role set with the
// roles carried on the entity.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	m := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrClientExists.WrapMessage("email or phone already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update client")
	}

	if err := repo.db.WithContext(ctx).Model(m).Association("Roles").Replace(m.Roles); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update client roles")
	}

	client.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the client deleted and clears the active flag. The row
// and its role links stay in place for auditing.
func (repo *clientRepository) SoftDelete(ctx context.Context, client *entity.Client) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"active":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete client")
	}

	client.DeletedAt = &now
	client.Active = false
	client.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.Roles))
	for i := range data.Roles {
		roles = append(roles, *toRoleDomain(&data.Roles[i]))
	}

	return &entity.Client{
		ID:             data.ID,
		Email:          data.Email,
		PhoneNumber:    data.PhoneNumber,
		PasswordHash:   data.PasswordHash,
		Name:           data.Name,
		DateOfBirth:    data.DateOfBirth,
		Address:        data.Address,
		Bio:            data.Bio,
		ProfilePicture: data.ProfilePicture,
		Gender:         entity.Gender(data.Gender),
		Active:         data.Active,
		Roles:          roles,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeletedAt:      data.DeletedAt,
	}
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	// Only the role IDs matter for persistence; the link lives in the
	// join table and role rows are managed by the role repository.
	roles := make([]model.RoleModel, 0, len(data.Roles))
	for i := range data.Roles {
		roles = append(roles, model.RoleModel{ID: data.Roles[i].ID})
	}

	return &model.ClientModel{
		ID:             data.ID,
		Email:          data.Email,
		PhoneNumber:    data.PhoneNumber,
		PasswordHash:   data.PasswordHash,
		Name:           data.Name,
		DateOfBirth:    data.DateOfBirth,
		Address:        data.Address,
		Bio:            data.Bio,
		ProfilePicture: data.ProfilePicture,
		Gender:         string(data.Gender),
		Active:         data.Active,
		Roles:          roles,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeletedAt:      data.DeletedAt,
	}
}
