package testutil

import (
	"testing"

	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB abre una base SQLite en memoria con la tabla Cliente creada.
// Una sola conexión: cada conexión a ":memory:" sería una base distinta.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&postgres.ClienteModel{}))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
