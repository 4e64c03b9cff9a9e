package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want Notation
	}{
		{"a1", NotationA1},
		{"A1", NotationA1},
		{"r1c1", NotationR1C1},
		{"R1c1", NotationR1C1},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.want, mustNotation(t, got.String()))
	}

	_, err := ParseNotation("rc")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, "Notation(9)", Notation(9).String())
}

func mustNotation(t *testing.T, s string) Notation {
	t.Helper()
	n, err := ParseNotation(s)
	require.NoError(t, err)
	return n
}
