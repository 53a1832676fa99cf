package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectExpression(t *testing.T) {
	tests := []struct {
		name        string
		attribution string
		expected    string
	}{
		{
			name:        "whispered selects whispering",
			attribution: "she whispered fearfully",
			expected:    "whispering",
		},
		{
			name:        "softly selects whispering",
			attribution: "said Mary softly",
			expected:    "whispering",
		},
		{
			name:        "exclaimed selects shouting over excited",
			attribution: "he exclaimed",
			expected:    "shouting",
		},
		{
			name:        "yelled selects shouting",
			attribution: "yelled the giant",
			expected:    "shouting",
		},
		{
			name:        "excitedly selects excited",
			attribution: "said Tom excitedly",
			expected:    "excited",
		},
		{
			name:        "sadly selects sad",
			attribution: "she said sadly",
			expected:    "sad",
		},
		{
			name:        "growled selects angry",
			attribution: "growled the ogre",
			expected:    "angry",
		},
		{
			name:        "trembling selects terrified",
			attribution: "said the boy, trembling",
			expected:    "terrified",
		},
		{
			name:        "laughed selects cheerful",
			attribution: "laughed Anna",
			expected:    "cheerful",
		},
		{
			name:        "hopefully selects hopeful",
			attribution: "said the knight hopefully",
			expected:    "hopeful",
		},
		{
			name:        "case insensitive",
			attribution: "SHOUTED the king",
			expected:    "shouting",
		},
		{
			name:        "plain attribution has no expression",
			attribution: "said Mary",
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
			assert.Equal(t, tt.expected, DetectExpression(tt.attribution))
		})
	}
}
