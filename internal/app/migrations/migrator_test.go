package migrations

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"010_more.sql":  {Data: []byte("SELECT 1;")},
		"002_news.sql":  {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("docs")},
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"old/003_x.sql": {Data: []byte("SELECT 1;")},
	}
	files, err := Pending(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_news.sql", "010_more.sql"}, files)
	assert.Equal(t, "010", Version(files[2]))
}

func TestEmbeddedSchema(t *testing.T) {
	files, err := Pending(Files())
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := fs.ReadFile(Files(), files[0])
	require.NoError(t, err)
	schema := string(content)

	for _, want := range []string{
		"CONSTRAINT students_roll_number_key UNIQUE (roll_number)",
		"CONSTRAINT users_username_key UNIQUE (username)",
		"REFERENCES events(id) ON DELETE SET NULL",
	} {
		assert.True(t, strings.Contains(schema, want), "schema missing %q", want)
	}
}
