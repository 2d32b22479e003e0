package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Alex",
			expected: "Welcome, Alex!",
		},
		{
			name:     "name with spaces",
			input:    "Ada Lovelace",
			expected: "Welcome, Ada Lovelace!",
		},
		{
			name:     "empty name",
			input:    "",
			expected: "Welcome, !",
		},
		{
			name:     "unicode name",
			input:    "Zoë",
			expected: "Welcome, Zoë!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WelcomeMessage(tt.input))
		})
	}
}

func TestWelcomeMessage_Deterministic(t *testing.T) {
	assert.Equal(t, WelcomeMessage("Alex"), WelcomeMessage("Alex"))
}

func TestWelcomer_Format(t *testing.T) {
	w := NewWelcomer()
	assert.Equal(t, WelcomeMessage("Alex"), w.Format("Alex"))
}
