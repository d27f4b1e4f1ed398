package archive

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	for _, name := range []string{"interventions", "users", "communes", "Themes"} {
		_, err := ParseTable(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseTable("pieces_jointes")
	assert.Error(t, err)
}

func TestNewRecord(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r, err := NewRecord(TableCommunes, 7, json.RawMessage(`{"nom":"Lyon"}`), " fusion ", 1, at)
	require.NoError(t, err)

	assert.Equal(t, "fusion", r.Reason())
	assert.True(t, r.IsActive())
	assert.Equal(t, at, r.DateArchivage())

	require.NoError(t, r.MarkRestored(2, at.Add(time.Hour)))
	assert.False(t, r.IsActive())
	assert.Equal(t, uint(2), *r.RestoredBy())
	assert.Error(t, r.MarkRestored(2, at))
}

func TestNewRecord_Invalid(t *testing.T) {
	now := time.Now()
	_, err := NewRecord("pieces_jointes", 1, json.RawMessage(`{}`), "", 1, now)
	assert.Error(t, err)

	_, err = NewRecord(TableUsers, 0, json.RawMessage(`{}`), "", 1, now)
	assert.Error(t, err)

	_, err = NewRecord(TableUsers, 1, json.RawMessage(`{broken`), "", 1, now)
	assert.Error(t, err)

	_, err = NewRecord(TableUsers, 1, json.RawMessage(`{}`), "", 0, now)
	assert.Error(t, err)
}
