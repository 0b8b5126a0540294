package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(migrations), 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "initial_schema", migrations[0].Name)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS preventive_maintenances")
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestLoadOrdersAndValidates(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/0010_later.sql":  {Data: []byte("SELECT 10;")},
		"sql/0002_second.sql": {Data: []byte("SELECT 2;")},
		"sql/README.md":       {Data: []byte("ignored")},
	}
	migrations, err := loadFrom(fsys, "sql")
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 2, migrations[0].Version)
	assert.Equal(t, "later", migrations[1].Name)

	assert.Equal(t, []Migration{migrations[1]}, pendingAfter(migrations, 2))
	assert.Empty(t, pendingAfter(migrations, 10))

	_, err = loadFrom(fstest.MapFS{"sql/abc_bad.sql": {Data: []byte("")}}, "sql")
	assert.ErrorContains(t, err, "invalid version")

	_, err = loadFrom(fstest.MapFS{
		"sql/0001_a.sql": {Data: []byte("")},
		"sql/001_b.sql":  {Data: []byte("")},
	}, "sql")
	assert.ErrorContains(t, err, "share version 1")

	_, err = loadFrom(fstest.MapFS{"sql/0001.sql": {Data: []byte("")}}, "sql")
	assert.ErrorContains(t, err, "0001_description.sql")
}
