package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDialogue_AttributionBeforeQuote(t *testing.T) {
	t.Run("comma style", func(t *testing.T) {
		text := `Princess Elena called from the tower, "Rapunzel, let down your hair!"`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "Rapunzel, let down your hair!", matches[0].Dialogue)
		assert.Equal(t, "Princess Elena", matches[0].Character)
		assert.Equal(t, "Princess Elena said", matches[0].Attribution)
	})

	t.Run("direct style", func(t *testing.T) {
		text := `Mary said "Hello there" and walked away.`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "Hello there", matches[0].Dialogue)
		assert.Equal(t, "Mary", matches[0].Character)
	})

	t.Run("action across sentence boundary", func(t *testing.T) {
		text := `The dragon laughed menacingly. "You shall not pass!"`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "You shall not pass!", matches[0].Dialogue)
		assert.Equal(t, "The dragon", matches[0].Character)
	})
}

func TestExtractDialogue_TrailingAttribution(t *testing.T) {
	t.Run("said name", func(t *testing.T) {
		text := `"Hello," said Mary.`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "Hello,", matches[0].Dialogue)
		assert.Equal(t, "said Mary.", matches[0].Attribution)
		assert.Equal(t, "Mary", matches[0].Character)
		assert.Equal(t, 0, matches[0].Start)
		assert.Equal(t, len(text), matches[0].End)
	})

	t.Run("pronoun with expression", func(t *testing.T) {
		text := `"I am afraid," she whispered fearfully.`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "I am afraid,", matches[0].Dialogue)
		assert.Equal(t, "she", matches[0].Character)
		assert.Equal(t, "whispering", matches[0].Expression)
	})

	t.Run("attribution stops at next quote", func(t *testing.T) {
		text := `"Hi," said Tom. "Bye," said Ann.`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 2)

		assert.Equal(t, "Hi,", matches[0].Dialogue)
		assert.Equal(t, "said Tom.", matches[0].Attribution)
		assert.Equal(t, "Tom", matches[0].Character)

		assert.Equal(t, "Bye,", matches[1].Dialogue)
		assert.Equal(t, "said Ann.", matches[1].Attribution)
		assert.Equal(t, "Ann", matches[1].Character)
	})

	t.Run("attribution stops at new capitalized line", func(t *testing.T) {
		text := "\"Run!\" shouted Tom.\nThe storm was closing in."

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "shouted Tom.", matches[0].Attribution)
	})

	t.Run("unresolvable attribution leaves character empty", func(t *testing.T) {
		text := `"All is well," came the reply.`

		matches := ExtractDialogue(text)
		require.Len(t, matches, 1)

		assert.Equal(t, "came the reply.", matches[0].Attribution)
		assert.Equal(t, "", matches[0].Character)
	})
}

func TestExtractDialogue_NoDialogue(t *testing.T) {
	matches := ExtractDialogue("It was a quiet evening in the village.")
	assert.Empty(t, matches)
}

func TestExtractDialogue_MatchInvariants(t *testing.T) {
	text := `Sir Cedric declared, "We ride at dawn." The soldiers cheered.
"Are you certain?" asked Elena. "The pass is dangerous."
The dragon laughed menacingly. "None shall cross my bridge!"`

	matches := ExtractDialogue(text)
	require.NotEmpty(t, matches)

	for i, m := range matches {
		assert.GreaterOrEqual(t, m.Start, 0)
		assert.Less(t, m.Start, m.End)
		assert.LessOrEqual(t, m.End, len(text))

		if i > 0 {
			// Sorted and pairwise non-overlapping.
			assert.GreaterOrEqual(t, m.Start, matches[i-1].End)
		}
	}
}

func TestExtractDialogue_HigherPassWins(t *testing.T) {
	// The quote also matches the generic fallback pass; only the
	// higher-priority match with the leading attribution may survive.
	text := `Mary said "Good morning"`

	matches := ExtractDialogue(text)
	require.Len(t, matches, 1)

	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, "Mary", matches[0].Character)
	assert.Equal(t, "Mary said", matches[0].Attribution)
}
