package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_Ordered(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	assert.Equal(t, []string{"001_rooms.sql", "002_appointments.sql", "003_subleases.sql"}, names)
}

func TestSchemaIsIdempotent(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	for _, name := range names {
		body, err := files.ReadFile(name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "IF NOT EXISTS", name)
	}
}
