package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBAppliesMigrations(t *testing.T) {
	db, err := NewDB("dbtest_"+uuid.NewString(), false)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"products", "recycling_points", "ai_conversations", "ai_analyses", "scans"} {
		assert.True(t, db.GORM.Migrator().HasTable(table), "missing table %s", table)
	}

	var version int
	require.NoError(t, db.QueryRow("SELECT version FROM schema_migrations").Scan(&version))
	assert.Equal(t, 3, version)
}

func TestNewDBIsolatedByName(t *testing.T) {
	first, err := NewDB("dbtest_"+uuid.NewString(), false)
	require.NoError(t, err)
	defer first.Close()

	second, err := NewDB("dbtest_"+uuid.NewString(), false)
	require.NoError(t, err)
	defer second.Close()

	_, err = first.Exec(`INSERT INTO recycling_points (id, name, type, lat, lng) VALUES ('r1', 'Hub', 'recycling', 1, 2)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM recycling_points").Scan(&count))
	assert.Zero(t, count)
}

func TestNewDBRejectsEmptyName(t *testing.T) {
	_, err := NewDB("", false)
	assert.Error(t, err)
}
