package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	assert.Equal(t, "2025-01-001", FormatEntryID(2025, 1, 1))
	assert.Equal(t, "2025-12-042", FormatEntryID(2025, 12, 42))
	assert.Equal(t, "2025-06-1000", FormatEntryID(2025, 6, 1000))
}

func TestParseEntryID(t *testing.T) {
	year, month, seq, err := ParseEntryID("2025-01-007")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 7, seq)
}

func TestParseEntryIDRoundTrip(t *testing.T) {
	id := FormatEntryID(2024, 11, 123)
	year, month, seq, err := ParseEntryID(id)
	require.NoError(t, err)
	assert.Equal(t, id, FormatEntryID(year, month, seq))
}

func TestParseEntryIDInvalid(t *testing.T) {
	for _, bad := range []string{"", "2025", "2025-01", "abcd-01-001", "2025-xx-001", "2025-01-xxx"} {
		_, _, _, err := ParseEntryID(bad)
		assert.Error(t, err, "id %q", bad)
	}
}

func TestNewLineID(t *testing.T) {
	a := NewLineID()
	b := NewLineID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
