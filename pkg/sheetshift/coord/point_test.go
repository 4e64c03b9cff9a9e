package coord

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input  string
		row    int
		column int
	}{
		{"A1", 1, 1},
		{"Z9", 9, 26},
		{"AA10", 10, 27},
		{"BD14", 14, 56},
		{"XFD1", 1, MaxColumn},
		{"A1048576", MaxRow, 1},
		{"XFD1048576", MaxRow, MaxColumn},
	}

	for _, tt := range tests {
		p, err := ParsePoint(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.row, p.Row, tt.input)
		assert.Equal(t, tt.column, p.Column, tt.input)
		assert.Equal(t, tt.input, p.String())
	}
}

func TestParsePointRejects(t *testing.T) {
	inputs := []string{
		"", " ", "A", "1", " A1", "A1 ", "A 1",
		"@1", "[1", "A:", "A/", "A1:", "A1/", "A@1", "A[1",
		"XFE1", "AAAA1", "A1048577", "A01", "A0", "A-1",
		"a1", "A1B", "$A$1",
	}

	for _, input := range inputs {
		_, err := ParsePoint(input)
		if assert.Error(t, err, "ParsePoint(%q)", input) {
			assert.True(t, errors.Is(err, ErrFormat), "ParsePoint(%q) = %v", input, err)
		}
	}
}

func TestPointRoundTripAgainstExcelize(t *testing.T) {
	columns := []int{1, 2, 25, 26, 27, 52, 53, 702, 703, 16383, MaxColumn}
	rows := []int{1, 2, 99, 1000, MaxRow}

	for _, column := range columns {
		name, err := excelize.ColumnNumberToName(column)
		require.NoError(t, err)
		assert.Equal(t, name, ColumnLetters(column))

		for _, row := range rows {
			p := MustPoint(row, column)
			parsed, err := ParsePoint(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	}
}

func TestNewPointBounds(t *testing.T) {
	tests := []struct {
		row    int
		column int
		valid  bool
	}{
		{1, 1, true},
		{MaxRow, MaxColumn, true},
		{0, 1, false},
		{1, 0, false},
		{MaxRow + 1, 1, false},
		{1, MaxColumn + 1, false},
		{-3, -3, false},
	}

	for _, tt := range tests {
		_, err := NewPoint(tt.row, tt.column)
		if tt.valid {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrOutOfBounds)
		}
	}
}

func TestColumnNumber(t *testing.T) {
	n, err := ColumnNumber("xfd")
	require.NoError(t, err)
	assert.Equal(t, MaxColumn, n)

	_, err = ColumnNumber("XFE")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ColumnNumber("")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, "", ColumnLetters(0))
}

func TestPointStringR1C1(t *testing.T) {
	assert.Equal(t, "R1C1", MustPoint(1, 1).StringR1C1())
	assert.Equal(t, "R14C56", MustPoint(14, 56).StringR1C1())
}
