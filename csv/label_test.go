package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		row, column int
		want        string
	}{
		{1, 0, "A1"},
		{0, 0, "A0"},
		{9, 4, "E9"},
		{3, 25, "Z3"},
		{1, 26, "AA1"},
		{1, 27, "AB1"},
		{12, 51, "AZ12"},
		{1, 52, "BA1"},
		{1, 701, "ZZ1"},
		{100, 702, "AAA100"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Label(tc.row, tc.column), "Label(%d, %d)", tc.row, tc.column)
	}
}

func TestColumnLettersNegative(t *testing.T) {
	assert.Equal(t, "", ColumnLetters(-1))
}
