package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	got, err := migrateURL("postgres://app:s%40nha@db:5432/portal?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://app:s%40nha@db:5432/portal?sslmode=disable", got)

	got, err = migrateURL("postgresql://db/portal")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://db/portal", got)

	_, err = migrateURL("mysql://db/portal")
	assert.Error(t, err)
}

func TestMigrationsEmbutidas(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
