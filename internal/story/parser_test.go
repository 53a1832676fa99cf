package story

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(opts ParserOptions) *Parser {
	return NewParser(opts, nil)
}

func TestParseDialogue_SingleDialogue(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	segments := p.ParseDialogue(context.Background(), `"Hello," said Mary.`)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.True(t, seg.IsDialogue)
	assert.Equal(t, "Hello,", seg.Text)
	assert.Equal(t, "Mary", seg.Character)
	// Mary is a lexicon name, so she gets the first female voice.
	assert.Equal(t, FemaleVoices[0], seg.VoiceName)
}

func TestParseDialogue_NarrationAroundDialogue(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	text := `The sun was setting. "Hello," said Mary. It was beautiful.`
	segments := p.ParseDialogue(context.Background(), text)
	require.Len(t, segments, 3)

	assert.False(t, segments[0].IsDialogue)
	assert.Equal(t, "The sun was setting.", segments[0].Text)
	assert.Equal(t, DefaultNarratorVoice, segments[0].VoiceName)
	assert.Equal(t, DefaultNarratorStyle, segments[0].Style)

	assert.True(t, segments[1].IsDialogue)
	assert.Equal(t, "Hello,", segments[1].Text)

	// The attribution exceeds the elision threshold, so it is kept as
	// narration.
	assert.False(t, segments[2].IsDialogue)
	assert.Equal(t, "said Mary. It was beautiful.", segments[2].Text)
}

func TestParseDialogue_NoDialogue(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	segments := p.ParseDialogue(context.Background(), "  It was a quiet evening in the village.  ")
	require.Len(t, segments, 1)

	assert.False(t, segments[0].IsDialogue)
	assert.Equal(t, "It was a quiet evening in the village.", segments[0].Text)
	assert.Equal(t, DefaultNarratorVoice, segments[0].VoiceName)
}

func TestParseDialogue_ExpressionFromAttribution(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	segments := p.ParseDialogue(context.Background(), `"I am afraid," she whispered fearfully.`)
	require.Len(t, segments, 2)

	seg := segments[0]
	assert.True(t, seg.IsDialogue)
	assert.Equal(t, "whispering", seg.Style)
	assert.Equal(t, "she", seg.Character)
	assert.Equal(t, FemaleVoices[0], seg.VoiceName)

	// "she whispered fearfully." is above the elision threshold.
	assert.False(t, segments[1].IsDialogue)
	assert.Equal(t, "she whispered fearfully.", segments[1].Text)
}

func TestParseDialogue_ShortAttributionElided(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	segments := p.ParseDialogue(context.Background(), `"Hello," said Mary.`)
	require.Len(t, segments, 1)

	for _, seg := range segments {
		assert.NotEqual(t, "said Mary.", seg.Text)
	}
}

func TestParseDialogue_VoiceConsistency(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	text := `"Good morning," said Mary. The day began. "Good night," said Mary.`
	segments := p.ParseDialogue(context.Background(), text)

	var voices []string
	for _, seg := range segments {
		if seg.IsDialogue {
			voices = append(voices, seg.VoiceName)
		}
	}
	require.Len(t, voices, 2)
	assert.Equal(t, voices[0], voices[1], "a character keeps one voice for the session")
}

func TestParseDialogue_NarratorFallback(t *testing.T) {
	p := newTestParser(DefaultParserOptions())

	segments := p.ParseDialogue(context.Background(), `"All is well," came the reply.`)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.True(t, seg.IsDialogue)
	assert.Equal(t, "", seg.Character)
	assert.Equal(t, DefaultNarratorVoice, seg.VoiceName)
}

func TestParseDialogue_Overrides(t *testing.T) {
	opts := DefaultParserOptions()
	opts.Overrides = map[string]CharacterVoice{
		"Mary": {VoiceName: "en-US-AnaNeural", DefaultStyle: "cheerful"},
	}
	p := newTestParser(opts)

	t.Run("override voice and default style apply", func(t *testing.T) {
		segments := p.ParseDialogue(context.Background(), `"Hello," said Mary.`)
		require.Len(t, segments, 1)

		assert.Equal(t, "en-US-AnaNeural", segments[0].VoiceName)
		assert.Equal(t, "cheerful", segments[0].Style)
	})

	t.Run("detected expression beats default style", func(t *testing.T) {
		segments := p.ParseDialogue(context.Background(), `"Run!" shouted Mary.`)
		require.Len(t, segments, 1)

		assert.Equal(t, "en-US-AnaNeural", segments[0].VoiceName)
		assert.Equal(t, "shouting", segments[0].Style)
	})
}

func TestParseDialogue_Coverage(t *testing.T) {
	// Every word of the input must survive into some segment.
	p := newTestParser(DefaultParserOptions())

	text := `Sir Cedric declared, "We ride at dawn." The soldiers cheered loudly.
"Are you certain?" asked Elena with a worried glance.`

	segments := p.ParseDialogue(context.Background(), text)
	require.NotEmpty(t, segments)

	var all strings.Builder
	for _, seg := range segments {
		all.WriteString(seg.Text)
		all.WriteString(" ")
	}
	joined := all.String()

	for _, phrase := range []string{
		"We ride at dawn.",
		"The soldiers cheered",
		"Are you certain?",
	} {
		assert.Contains(t, joined, phrase)
	}
}

func TestParseDialogue_CustomNarrator(t *testing.T) {
	opts := ParserOptions{
		NarratorVoice: "en-US-JennyNeural",
		NarratorStyle: "",
	}
	p := newTestParser(opts)

	segments := p.ParseDialogue(context.Background(), "Just narration here.")
	require.Len(t, segments, 1)

	assert.Equal(t, "en-US-JennyNeural", segments[0].VoiceName)
	assert.Equal(t, "", segments[0].Style)
}
