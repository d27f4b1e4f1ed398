package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/shared/config"
)

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tag.db")

	database, err := Open(&config.DatabaseConfig{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)

	var one int
	require.NoError(t, database.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Close())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitAndClose(t *testing.T) {
	require.NoError(t, Init(&config.DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"}))
	assert.NotNil(t, Get())
	assert.NoError(t, Close())
}

func TestSQLiteLowerFoldsAccents(t *testing.T) {
	database, err := Open(&config.DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)

	var row struct {
		Word    string
		Null    *string
		Matches int
	}
	require.NoError(t, database.Raw(
		`SELECT LOWER('ÉQUIPEMENT Saint-Étienne') AS word, LOWER(NULL) AS null,`+
			` (SELECT COUNT(*) WHERE LOWER('Équipement sportif') LIKE '%équipement%') AS matches`,
	).Scan(&row).Error)

	assert.Equal(t, "équipement saint-étienne", row.Word)
	assert.Nil(t, row.Null)
	assert.Equal(t, 1, row.Matches)
}
