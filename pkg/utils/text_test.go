package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxChars int
		expected string
	}{
		{name: "shorter than limit", input: "Bonjour", maxChars: 10, expected: "Bonjour"},
		{name: "exact limit", input: "Bonjour", maxChars: 7, expected: "Bonjour"},
		{name: "cut on runes not bytes", input: "Prénom Zoé", maxChars: 3, expected: "Pré"},
		{name: "accented tail kept whole", input: "éàü", maxChars: 2, expected: "éà"},
		{name: "non positive limit", input: "Bonjour", maxChars: 0, expected: "Bonjour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateRunes(tt.input, tt.maxChars))
		})
	}
}
