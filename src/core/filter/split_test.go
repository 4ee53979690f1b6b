package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "  \t ",
			expected: nil,
		},
		{
			name:     "single entry",
			raw:      "1.2.3.4",
			expected: []string{"1.2.3.4"},
		},
		{
			name:     "multiple entries trimmed",
			raw:      " 1.2.3.4 , 5.6.7.8 ",
			expected: []string{"1.2.3.4", "5.6.7.8"},
		},
		{
			name:     "empty pieces discarded",
			raw:      "1.2.3.4,,  ,5.6.7.8",
			expected: []string{"1.2.3.4", "5.6.7.8"},
		},
		{
			name:     "modern comment stripped",
			raw:      "1.2.3.4|note",
			expected: []string{"1.2.3.4"},
		},
		{
			name:     "legacy comment stripped on two occurrences",
			raw:      "1.2.3.4?note?extra",
			expected: []string{"1.2.3.4"},
		},
		{
			name:     "single legacy delimiter kept",
			raw:      "1.2.3.4?note",
			expected: []string{"1.2.3.4?note"},
		},
		{
			name:     "sub entries expanded",
			raw:      "1.2.3.4;5.6.7.8,9.9.9.9",
			expected: []string{"1.2.3.4", "5.6.7.8", "9.9.9.9"},
		},
		{
			name:     "comment stripped before sub entry split",
			raw:      "1.2.3.4;5.6.7.8|whole entry comment",
			expected: []string{"1.2.3.4", "5.6.7.8"},
		},
		{
			name:     "comment only entry discarded",
			raw:      "|just a note,1.2.3.4",
			expected: []string{"1.2.3.4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SplitSpec(tt.raw))
		})
	}
}

func TestSplitEntryFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry string
		a     string
		b     string
		c     string
	}{
		{
			name:  "three modern fields",
			entry: "a|b|c",
			a:     "a", b: "b", c: "c",
		},
		{
			name:  "solo entry padded",
			entry: "solo",
			a:     "solo", b: "", c: "",
		},
		{
			name:  "two modern fields padded",
			entry: "a|b",
			a:     "a", b: "b", c: "",
		},
		{
			name:  "legacy fields on two occurrences",
			entry: "a?b?c",
			a:     "a", b: "b", c: "c",
		},
		{
			name:  "single legacy delimiter is no delimiter",
			entry: "a?b",
			a:     "a?b", b: "", c: "",
		},
		{
			name:  "modern wins over legacy",
			entry: "a|b?c?d",
			a:     "a", b: "b?c?d", c: "",
		},
		{
			name:  "extra fields folded into third",
			entry: "a|b|c|d",
			a:     "a", b: "b", c: "c|d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b, c := SplitEntryFields(tt.entry)
			assert.Equal(t, tt.a, a)
			assert.Equal(t, tt.b, b)
			assert.Equal(t, tt.c, c)
		})
	}
}
