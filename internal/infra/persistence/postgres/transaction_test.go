package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CurrencyRepo().Create(ctx, &entity.Currency{Code: "USD", Status: true})
	})
	require.NoError(t, err)

	currencies, err := NewCurrencyRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, "USD", currencies[0].Code)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.CurrencyRepo().Create(ctx, &entity.Currency{Code: "EUR", Status: true}); createErr != nil {
			return createErr
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	currencies, err := NewCurrencyRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, currencies)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.CurrencyRepo().Create(ctx, &entity.Currency{Code: "GBP", Status: true}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	currencies, err := NewCurrencyRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, currencies)
}
