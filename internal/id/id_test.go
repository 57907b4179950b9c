package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	tests := []struct {
		year, month, seq int
		want             string
	}{
		{2025, 1, 1, "2025-01-001"},
		{2025, 12, 99, "2025-12-099"},
		{2024, 6, 123, "2024-06-123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEntryID(tt.year, tt.month, tt.seq))
	}
}

func TestParseEntryID(t *testing.T) {
	year, month, seq, err := ParseEntryID("2025-01-042")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 42, seq)
}

func TestParseEntryID_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2025", "2025-01", "yyyy-01-001", "2025-mm-001"} {
		_, _, _, err := ParseEntryID(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
