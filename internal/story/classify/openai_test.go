package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClassifier(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewOpenAIClassifier("", "gpt-4o-mini")
		assert.Error(t, err)
	})

	t.Run("requires model", func(t *testing.T) {
		_, err := NewOpenAIClassifier("sk-test", "")
		assert.Error(t, err)
	})

	t.Run("accepts options", func(t *testing.T) {
		c, err := NewOpenAIClassifier("sk-test", "gpt-4o-mini",
			WithBaseURL("https://example.openai.azure.com/openai/v1"),
			WithTimeout(10*time.Second),
		)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestParseAnalysis(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		content := `{
			"characters": {
				"Mary": {
					"gender": "female",
					"aliases": ["The Queen", "Her Majesty"],
					"reasoning": "female name and pronouns"
				}
			}
		}`

		result, err := parseAnalysis(content)
		require.NoError(t, err)

		require.Contains(t, result, "mary")
		info := result["mary"]
		assert.Equal(t, "Mary", info.Name)
		assert.Equal(t, GenderFemale, info.Gender)
		assert.Equal(t, []string{"the queen", "her majesty"}, info.Aliases)
		assert.Equal(t, "female name and pronouns", info.Reasoning)
	})

	t.Run("invalid gender falls back to neutral", func(t *testing.T) {
		content := `{"characters": {"Rex": {"gender": "dog", "reasoning": "pet"}}}`

		result, err := parseAnalysis(content)
		require.NoError(t, err)
		assert.Equal(t, GenderNeutral, result["rex"].Gender)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		content := "\n  {\"characters\": {}}  \n"

		result, err := parseAnalysis(content)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseAnalysis("sorry, I cannot do that")
		assert.Error(t, err)
	})
}
