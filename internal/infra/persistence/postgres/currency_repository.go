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
)

// currencyRepository implements the domain's CurrencyRepository interface using GORM.
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository is the constructor for currencyRepository.
func NewCurrencyRepository(db *gorm.DB) repository.CurrencyRepository {
	return &currencyRepository{db: db}
}

// List retrieves all non-deleted currencies.
func (repo *currencyRepository) List(ctx context.Context) ([]*entity.Currency, error) {
	var models []*model.CurrencyModel
	err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("code").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list currencies")
	}

	currencies := make([]*entity.Currency, 0, len(models))
	for _, m := range models {
		currencies = append(currencies, toCurrencyDomain(m))
	}

	return currencies, nil
}

// FindByID retrieves a single currency by ID, soft-deleted rows included.
func (repo *currencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error) {
	var m model.CurrencyModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCurrencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find currency by id")
	}

	return toCurrencyDomain(&m), nil
}

// Create persists a new currency.
func (repo *currencyRepository) Create(ctx context.Context, currency *entity.Currency) error {
	m := fromCurrencyDomain(currency)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create currency")
	}

	currency.ID = m.ID
	currency.CreatedAt = m.CreatedAt
	currency.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing currency.
func (repo *currencyRepository) Update(ctx context.Context, currency *entity.Currency) error {
	m := fromCurrencyDomain(currency)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update currency")
	}

	currency.UpdatedAt = m.UpdatedAt

	return nil
}

// SoftDelete marks the currency deleted and clears the status flag.
func (repo *currencyRepository) SoftDelete(ctx context.Context, currency *entity.Currency) error {
	now := time.Now()
	err := repo.db.WithContext(ctx).
		Model(&model.CurrencyModel{}).
		Where("id = ?", currency.ID).
		Updates(map[string]any{
			"deleted_at": now,
			"status":     false,
			"updated_at": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to soft delete currency")
	}

	currency.DeletedAt = &now
	currency.Status = false
	currency.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toCurrencyDomain(data *model.CurrencyModel) *entity.Currency {
	if data == nil {
		return nil
	}

	return &entity.Currency{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Symbol:    data.Symbol,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}

func fromCurrencyDomain(data *entity.Currency) *model.CurrencyModel {
	if data == nil {
		return nil
	}

	return &model.CurrencyModel{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Symbol:    data.Symbol,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
	}
}
