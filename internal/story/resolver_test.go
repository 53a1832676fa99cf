package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCharacter(t *testing.T) {
	tests := []struct {
		name        string
		attribution string
		expected    string
	}{
		{
			name:        "single name before verb",
			attribution: "Mary said",
			expected:    "Mary",
		},
		{
			name:        "titled name before verb",
			attribution: "Sir Cedric declared",
			expected:    "Sir Cedric",
		},
		{
			name:        "two-word name before verb",
			attribution: "Elena Rodriguez whispered",
			expected:    "Elena Rodriguez",
		},
		{
			name:        "name after verb",
			attribution: "said Mary",
			expected:    "Mary",
		},
		{
			name:        "titled name after verb",
			attribution: "said Princess Elena",
			expected:    "Princess Elena",
		},
		{
			name:        "role phrase after verb",
			attribution: "replied the knight",
			expected:    "the knight",
		},
		{
			name:        "she pronoun returned verbatim",
			attribution: "she whispered fearfully.",
			expected:    "she",
		},
		{
			name:        "he pronoun returned verbatim",
			attribution: "he roared",
			expected:    "he",
		},
		{
			name:        "adverb after verb is not a name",
			attribution: "whispered softly",
			expected:    "",
		},
		{
			name:        "no speaker",
			attribution: "the wind howled",
			expected:    "",
		},
		{
			name:        "empty attribution",
			attribution: "",
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveCharacter(tt.attribution))
		})
	}
}
