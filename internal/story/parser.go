package story

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kjingers/tonisynth/internal/story/classify"
)

// ParserOptions configures a parsing session.
type ParserOptions struct {
	// NarratorVoice reads all non-dialogue text.
	NarratorVoice string

	// NarratorStyle is applied to narration segments.
	NarratorStyle string

	// Language is the xml:lang attribute of the markup envelope.
	Language string

	// Overrides pins specific characters to voices, bypassing inference.
	Overrides map[string]CharacterVoice

	// ElisionThreshold is the trimmed attribution length above which the
	// attribution is re-inserted as narration. Zero selects the default.
	ElisionThreshold int
}

// DefaultParserOptions returns the stock narrator configuration.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		NarratorVoice:    DefaultNarratorVoice,
		NarratorStyle:    DefaultNarratorStyle,
		Language:         DefaultLanguage,
		ElisionThreshold: DefaultElisionThreshold,
	}
}

// Parser assigns voices and expressions to the characters of one document
// at a time. Character-to-voice assignments persist for the lifetime of the
// session.
//
// Parser holds per-session mutable state and is not safe for concurrent
// use; hosts handling parallel requests construct one Parser per request.
type Parser struct {
	opts     ParserOptions
	assigner *VoiceAssigner
	analyzer *classify.Analyzer

	// doc is the document currently being parsed, needed as context for
	// deferred gender analysis.
	doc string
}

// NewParser creates a parsing session. analyzer may be nil, which limits
// gender inference to the lexicon tier.
func NewParser(opts ParserOptions, analyzer *classify.Analyzer) *Parser {
	if opts.NarratorVoice == "" {
		opts.NarratorVoice = DefaultNarratorVoice
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.ElisionThreshold <= 0 {
		opts.ElisionThreshold = DefaultElisionThreshold
	}

	p := &Parser{
		opts:     opts,
		analyzer: analyzer,
	}
	p.assigner = NewVoiceAssigner(opts.Overrides, p.inferGender)
	return p
}

// inferGender runs the lexicon tier against the attribution context and,
// when that is inconclusive and an analyzer is configured, defers to the
// document-level analysis.
func (p *Parser) inferGender(ctx context.Context, name, attribution string) string {
	gender := classify.DetectGender(name, attribution)
	if gender != classify.GenderNeutral || p.analyzer == nil {
		return gender
	}

	gender, reasoning := p.analyzer.Gender(ctx, name, p.doc)
	log.Debug().
		Str("character", name).
		Str("gender", gender).
		Str("reasoning", reasoning).
		Msg("Deferred gender analysis")
	return gender
}

// ParseDialogue splits text into an ordered sequence of narration and
// dialogue segments. It never fails: text without dialogue yields a single
// narration segment, and unresolvable speakers fall back to the narrator
// voice.
func (p *Parser) ParseDialogue(ctx context.Context, text string) []Segment {
	p.doc = text
	matches := ExtractDialogue(text)

	var segments []Segment
	lastEnd := 0

	for _, match := range matches {
		// Narration before this dialogue.
		if match.Start > lastEnd {
			if narration := strings.TrimSpace(text[lastEnd:match.Start]); narration != "" {
				segments = append(segments, p.narration(narration))
			}
		}

		segments = append(segments, p.dialogue(ctx, match))

		// Re-insert the attribution as narration only when it carries
		// enough content that eliding it would lose information.
		if attr := strings.TrimSpace(match.Attribution); len(attr) > p.opts.ElisionThreshold {
			segments = append(segments, p.narration(attr))
		}

		lastEnd = match.End
	}

	// Trailing narration after the last dialogue.
	if lastEnd < len(text) {
		if remaining := strings.TrimSpace(text[lastEnd:]); remaining != "" {
			segments = append(segments, p.narration(remaining))
		}
	}

	if len(segments) == 0 {
		segments = append(segments, p.narration(strings.TrimSpace(text)))
	}

	return segments
}

func (p *Parser) narration(text string) Segment {
	return Segment{
		Text:      text,
		VoiceName: p.opts.NarratorVoice,
		Style:     p.opts.NarratorStyle,
	}
}

func (p *Parser) dialogue(ctx context.Context, match DialogueMatch) Segment {
	voiceName := p.opts.NarratorVoice
	style := match.Expression

	if match.Character != "" {
		voice := p.assigner.Voice(ctx, match.Character, match.Attribution)
		voiceName = voice.VoiceName
		if style == "" {
			style = voice.DefaultStyle
		}
	}

	return Segment{
		Text:       match.Dialogue,
		VoiceName:  voiceName,
		Style:      style,
		IsDialogue: true,
		Character:  match.Character,
	}
}
