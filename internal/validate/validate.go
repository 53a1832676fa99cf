// Package validate centralizes input validation for synthesis requests.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kjingers/tonisynth/internal/story"
)

const (
	// MinTextLength is the smallest accepted trimmed input.
	MinTextLength = 1

	// MaxTextLength bounds single-shot synthesis text.
	MaxTextLength = 5000

	// MaxBatchTextLength bounds batch synthesis text.
	MaxBatchTextLength = 100000

	// MaxTitleLength bounds filename titles before sanitization.
	MaxTitleLength = 200
)

var (
	voicePattern       = regexp.MustCompile(`^[a-z]{2,3}-[A-Z]{2}-\w+Neural$`)
	synthesisIDPattern = regexp.MustCompile(`^[\w\-]+$`)
	wordCleanPattern   = regexp.MustCompile(`[^\w]`)
)

// Result is the outcome of a validation check.
type Result struct {
	Valid bool
	Error string
	Field string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(err, field string) Result {
	return Result{Error: err, Field: field}
}

// Text checks length bounds on the trimmed text. fieldName feeds error
// messages; empty selects "text".
func Text(text string, maxLength, minLength int, fieldName string) Result {
	if fieldName == "" {
		fieldName = "text"
	}
	if maxLength <= 0 {
		maxLength = MaxTextLength
	}
	if minLength <= 0 {
		minLength = MinTextLength
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minLength {
		return invalid(fmt.Sprintf("%s must be at least %d characters", fieldName, minLength), fieldName)
	}
	if len(trimmed) > maxLength {
		return invalid(fmt.Sprintf("%s must not exceed %d characters", fieldName, maxLength), fieldName)
	}
	return valid()
}

// Voice checks the neural voice name format. Empty is accepted since the
// field is optional.
func Voice(voice string) Result {
	if voice == "" {
		return valid()
	}
	if !voicePattern.MatchString(voice) {
		return invalid(fmt.Sprintf("Invalid voice format: %s. Expected format: 'en-US-VoiceNameNeural'", voice), "voice")
	}
	return valid()
}

// Style checks the speaking style against the known style catalogue. Style
// compatibility with a specific voice is not enforced; unsupported
// combinations degrade gracefully at synthesis time.
func Style(style, voice string) Result {
	if style == "" {
		return valid()
	}

	known := make(map[string]bool)
	for _, styles := range story.VoiceStyles {
		for _, s := range styles {
			known[s] = true
		}
	}

	if !known[style] {
		names := make([]string, 0, len(known))
		for s := range known {
			names = append(names, s)
		}
		sort.Strings(names)
		return invalid(fmt.Sprintf("Invalid style: %s. Available styles: %s", style, strings.Join(names, ", ")), "style")
	}
	return valid()
}

// Preset checks the story preset name.
func Preset(preset string) Result {
	if preset == "" {
		return valid()
	}
	if _, ok := story.Presets[preset]; !ok {
		names := make([]string, 0, len(story.Presets))
		for name := range story.Presets {
			names = append(names, name)
		}
		sort.Strings(names)
		return invalid(fmt.Sprintf("Invalid preset: %s. Available presets: %s", preset, strings.Join(names, ", ")), "preset")
	}
	return valid()
}

// Title checks a filename title. Sanitization happens elsewhere; this only
// bounds the length.
func Title(title string) Result {
	if title == "" {
		return valid()
	}
	if len(title) > MaxTitleLength {
		return invalid(fmt.Sprintf("Title must not exceed %d characters", MaxTitleLength), "title")
	}
	return valid()
}

// SynthesisID checks a synthesis job identifier: required, 10 to 100
// characters, word characters and hyphens only.
func SynthesisID(id string) Result {
	if id == "" {
		return invalid("synthesis_id is required", "synthesis_id")
	}
	if len(id) < 10 || len(id) > 100 {
		return invalid("Invalid synthesis_id format", "synthesis_id")
	}
	if !synthesisIDPattern.MatchString(id) {
		return invalid("synthesis_id contains invalid characters", "synthesis_id")
	}
	return valid()
}

// Request validates a full synthesis request and returns the first failure.
func Request(text, voice, style, preset, title string) Result {
	checks := []func() Result{
		func() Result { return Text(text, MaxBatchTextLength, MinTextLength, "text") },
		func() Result { return Voice(voice) },
		func() Result { return Style(style, voice) },
		func() Result { return Preset(preset) },
		func() Result { return Title(title) },
	}
	for _, check := range checks {
		if result := check(); !result.Valid {
			return result
		}
	}
	return valid()
}

var storyKeywords = map[string]bool{
	"story":     true,
	"adventure": true,
	"tale":      true,
	"once":      true,
	"upon":      true,
}

var storyOpenings = []*regexp.Regexp{
	regexp.MustCompile(`^once upon a time`),
	regexp.MustCompile(`^in a land far`),
	regexp.MustCompile(`^long ago`),
	regexp.MustCompile(`^the story of`),
	regexp.MustCompile(`^a tale of`),
	regexp.MustCompile(`^chapter \d`),
	regexp.MustCompile(`^prologue`),
}

// IsAdventureText reports whether text looks like a story or adventure
// narrative, which auto-enables multi-voice parsing. It checks story
// keywords in the first ten words and common opening phrases in the first
// hundred characters.
func IsAdventureText(text string) bool {
	if text == "" {
		return false
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) > 10 {
		words = words[:10]
	}
	for _, word := range words {
		clean := wordCleanPattern.ReplaceAllString(word, "")
		if storyKeywords[clean] {
			return true
		}
	}

	head := strings.ToLower(text)
	if len(head) > 100 {
		head = head[:100]
	}
	for _, pattern := range storyOpenings {
		if pattern.MatchString(head) {
			return true
		}
	}
	return false
}
