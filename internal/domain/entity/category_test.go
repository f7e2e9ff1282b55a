package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain label", "Food", "Food"},
		{"Leading and trailing spaces", "  Food  ", "Food"},
		{"Tabs and newlines", "\tRent\n", "Rent"},
		{"Case preserved", "food", "food"},
		{"Only whitespace", "   ", ""},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCategory(tc.input))
		})
	}
}
