// Package naming derives descriptive filenames and job identifiers from
// input text, replacing opaque UUID-only names with readable ones like
// "once-upon-a-time-a-brave_a3b2c1d4".
package naming

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultMaxLength bounds the descriptive part of a filename.
	DefaultMaxLength = 50

	// DefaultWordCount is how many leading words feed the name.
	DefaultWordCount = 6
)

// ErrAITitleNotImplemented is returned when AI title generation is
// requested. The LLM-summarized variant is not built yet.
var ErrAITitleNotImplemented = errors.New("AI-powered filename generation not implemented")

var (
	invalidCharsPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorPattern    = regexp.MustCompile(`[\s-]+`)
)

// ExtractFirstWords returns the first wordCount whitespace-separated words
// of text, joined by single spaces. Non-positive wordCount selects the
// default.
func ExtractFirstWords(text string, wordCount int) string {
	if wordCount <= 0 {
		wordCount = DefaultWordCount
	}
	words := strings.Fields(text)
	if len(words) > wordCount {
		words = words[:wordCount]
	}
	return strings.Join(words, " ")
}

// SanitizeForFilename lowercases text, drops everything but letters, digits,
// spaces and hyphens, collapses separators to single hyphens, and truncates
// to maxLength. Truncation prefers a hyphen boundary within the last 10
// characters so words are not cut mid-way.
func SanitizeForFilename(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	result := strings.ToLower(text)
	result = invalidCharsPattern.ReplaceAllString(result, "")
	result = separatorPattern.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxLength {
		truncated := result[:maxLength]
		lastHyphen := strings.LastIndex(truncated, "-")
		if lastHyphen > maxLength-10 {
			result = truncated[:lastHyphen]
		} else {
			result = strings.TrimRight(truncated, "-")
		}
	}

	return result
}

// Options control descriptive name generation.
type Options struct {
	MaxLength int
	WordCount int

	// UseAI requests an LLM-summarized title instead of leading-word
	// extraction. Not implemented.
	UseAI bool
}

// DescriptiveName builds the descriptive part of a filename from text.
// Text that sanitizes to nothing falls back to "audio".
func DescriptiveName(text string, opts Options) (string, error) {
	if opts.UseAI {
		return "", ErrAITitleNotImplemented
	}

	firstWords := ExtractFirstWords(text, opts.WordCount)
	sanitized := SanitizeForFilename(firstWords, opts.MaxLength)
	if sanitized == "" {
		sanitized = "audio"
	}
	return sanitized, nil
}

// FilenameWithSuffix returns a complete filename with a short random suffix,
// like "once-upon-a-time-a-brave_a3b2c1d4.mp3". An empty extension defaults
// to ".mp3".
func FilenameWithSuffix(text string, opts Options, extension string) (string, error) {
	if extension == "" {
		extension = ".mp3"
	}
	id, err := SynthesisID(text, opts)
	if err != nil {
		return "", err
	}
	return id + extension, nil
}

// SynthesisID returns a job identifier with a descriptive prefix and an
// 8-character random suffix, like "once-upon-a-time-a-brave_a3b2c1d4".
func SynthesisID(text string, opts Options) (string, error) {
	descriptive, err := DescriptiveName(text, opts)
	if err != nil {
		return "", err
	}
	return descriptive + "_" + shortUUID(), nil
}

func shortUUID() string {
	return uuid.NewString()[:8]
}
