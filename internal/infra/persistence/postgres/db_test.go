package postgres

import (
	"path/filepath"
	"testing"

	"bazaar/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema. The
// models assign their own UUIDs, so the repositories behave the same here
// as against PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "bazaar.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ClientModel{},
		&model.RoleModel{},
		&model.PermissionModel{},
		&model.CategoryModel{},
		&model.CurrencyModel{},
		&model.ProductModel{},
		&model.DocumentModel{},
		&model.CharacteristicModel{},
		&model.CartModel{},
		&model.CartItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.SupportModel{},
		&model.GlobalVarModel{},
	))

	return db
}
