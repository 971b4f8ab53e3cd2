package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spoken email address",
			input:    "contact me at example dot com",
			expected: "contact me@example.com",
		},
		{
			name:     "at replaced mid-sentence",
			input:    "email at example dot com",
			expected: "email@example.com",
		},
		{
			name:     "multiple occurrences",
			input:    "a at b at c dot d dot e",
			expected: "a@b@c.d.e",
		},
		{
			name:     "no trigger patterns",
			input:    "plain transcript with nothing to rewrite",
			expected: "plain transcript with nothing to rewrite",
		},
		{
			name:     "requires surrounding spaces",
			input:    "cat dog attic dots",
			expected: "cat dog attic dots",
		},
		{
			name:     "known false positive on ordinary speech",
			input:    "meet me at noon",
			expected: "meet me@noon",
		},
		{
			name:     "leading and trailing triggers untouched without both spaces",
			input:    "at the start and the end dot",
			expected: "at the start and the end dot",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"contact me at example dot com",
		"a at b dot c",
		"nothing to rewrite",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
