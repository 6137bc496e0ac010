package migrations

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := 0, 0
	for _, name := range entries {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups++
			assert.Contains(t, entries, strings.TrimSuffix(name, ".up.sql")+".down.sql")
		case strings.HasSuffix(name, ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
}

func TestSchemaDeclaresUniqueIdentifiers(t *testing.T) {
	schema, err := fs.ReadFile(files, "000001_create_enquiries.up.sql")
	require.NoError(t, err)

	for _, index := range []string{
		"UNIQUE INDEX IF NOT EXISTS idx_enquiries_enquiry_id",
		"UNIQUE INDEX IF NOT EXISTS idx_enquiries_matter_code",
		"UNIQUE INDEX IF NOT EXISTS idx_payments_enquiry_id",
	} {
		assert.Contains(t, string(schema), index)
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Error(t, Run("", Up, logger))
}
