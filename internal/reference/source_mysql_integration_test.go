//go:build integration

package reference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nik-parser/internal/testutil/containers"
)

const schemaScript = "../../data/schema.sql"

func TestMySQLSeedAndLoad(t *testing.T) {
	ctx := context.Background()
	db := containers.NewMySQL(t, schemaScript)

	require.NoError(t, SeedMySQL(ctx, db, sampleRaw()))

	var name, zip string
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT name, zip_code FROM districts WHERE id = ?", "357644").Scan(&name, &zip))
	assert.Equal(t, "KRANGGAN", name)
	assert.Equal(t, "613-21", zip)

	raw, err := ReadAll(ctx, NewMySQLSource(db))
	require.NoError(t, err)
	assert.Equal(t, sampleRaw(), raw)

	l := NewLoader(NewMySQLSource(db), quietLogger())
	status, err := l.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mysql", status.Source)
	assert.Equal(t, Counts{Provinces: 2, Regencies: 3, Districts: 3}, status.Counts)

	store, err := l.Store()
	require.NoError(t, err)
	district, ok := store.District("357644")
	require.True(t, ok)
	assert.Equal(t, Region{ID: "357644", Name: "Kranggan", ZipCode: "61321"}, district)
}

func TestMySQLSeedReplacesPreviousData(t *testing.T) {
	ctx := context.Background()
	db := containers.NewMySQL(t, schemaScript)

	require.NoError(t, SeedMySQL(ctx, db, sampleRaw()))
	require.NoError(t, SeedMySQL(ctx, db, RawTables{
		Provinces: map[string]string{"11": "ACEH"},
		Districts: map[string]string{"110101": "BAKONGAN"},
	}))

	raw, err := ReadAll(ctx, NewMySQLSource(db))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"11": "ACEH"}, raw.Provinces)
	assert.Empty(t, raw.Regencies)

	store := NewStore(raw)
	district, ok := store.District("110101")
	require.True(t, ok)
	assert.Equal(t, Region{ID: "110101", Name: "Bakongan"}, district)
}
