package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "warehouse",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		// A single connection keeps the in-memory schema visible across statements.
		require.NoError(t, db.Exec("CREATE TABLE sample_rows (id INTEGER PRIMARY KEY)").Error)
		require.NoError(t, db.Exec("INSERT INTO sample_rows (id) VALUES (1)").Error)

		var count int64
		require.NoError(t, db.Table("sample_rows").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
		assert.Nil(t, db)
	})
}
