package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWidget struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:64"`
	Color string `gorm:"size:16"`
}

func memoryConfig() Config {
	return Config{Driver: DriverSQLite, Name: ":memory:", TablePrefix: "wp_"}
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "wordpress",
			Driver:         DriverMySQL,
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(memoryConfig())
		require.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(memoryConfig())
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])

	// PRAGMA table_info returns an empty result for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMigrateAndCheckSchema(t *testing.T) {
	db, err := Connect(memoryConfig())
	require.NoError(t, err)

	issues, err := CheckSchema(db, &testWidget{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "wp_test_widgets", issues[0].Table)
	assert.Equal(t, "missing table wp_test_widgets", issues[0].String())

	require.NoError(t, Migrate(db, &testWidget{}))

	issues, err = CheckSchema(db, &testWidget{})
	require.NoError(t, err)
	assert.Empty(t, issues)

	require.NoError(t, db.Exec("ALTER TABLE wp_test_widgets DROP COLUMN color").Error)
	issues, err = CheckSchema(db, &testWidget{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "color", issues[0].Column)
}
