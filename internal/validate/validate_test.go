package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Run("valid text", func(t *testing.T) {
		result := Text("Once upon a time", 0, 0, "")
		assert.True(t, result.Valid)
	})

	t.Run("whitespace only is too short", func(t *testing.T) {
		result := Text("   ", 0, 0, "")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "at least")
		assert.Equal(t, "text", result.Field)
	})

	t.Run("over limit", func(t *testing.T) {
		result := Text(strings.Repeat("a", 50), 10, 1, "")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not exceed")
	})

	t.Run("custom field name in message", func(t *testing.T) {
		result := Text("", 0, 0, "title")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "title")
		assert.Equal(t, "title", result.Field)
	})
}

func TestVoice(t *testing.T) {
	tests := []struct {
		name  string
		voice string
		valid bool
	}{
		{"empty is optional", "", true},
		{"standard voice", "en-US-JennyNeural", true},
		{"three letter language", "fil-PH-AngeloNeural", true},
		{"missing region", "JennyNeural", false},
		{"missing suffix", "en-US-Jenny", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Voice(tt.voice).Valid)
		})
	}
}

func TestStyle(t *testing.T) {
	t.Run("empty is optional", func(t *testing.T) {
		assert.True(t, Style("", "").Valid)
	})

	t.Run("known style", func(t *testing.T) {
		assert.True(t, Style("cheerful", "").Valid)
	})

	t.Run("unknown style lists available", func(t *testing.T) {
		result := Style("sarcastic", "")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "Available styles")
	})
}

func TestPreset(t *testing.T) {
	t.Run("empty is optional", func(t *testing.T) {
		assert.True(t, Preset("").Valid)
	})

	t.Run("known preset", func(t *testing.T) {
		assert.True(t, Preset("bedtime").Valid)
	})

	t.Run("unknown preset", func(t *testing.T) {
		result := Preset("spooky")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "Available presets")
	})
}

func TestTitle(t *testing.T) {
	assert.True(t, Title("").Valid)
	assert.True(t, Title(strings.Repeat("a", 200)).Valid)
	assert.False(t, Title(strings.Repeat("a", 201)).Valid)
}

func TestSynthesisID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"empty required", "", false},
		{"too short", "abc", false},
		{"descriptive id", "once-upon-a-time_a3b2c1d4", true},
		{"invalid characters", "bad id with spaces", false},
		{"too long", strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, SynthesisID(tt.id).Valid)
		})
	}
}

func TestRequest(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		result := Request("Once upon a time", "en-US-JennyNeural", "cheerful", "bedtime", "My Story")
		assert.True(t, result.Valid)
	})

	t.Run("first failure wins", func(t *testing.T) {
		result := Request("", "bad-voice", "", "", "")
		assert.False(t, result.Valid)
		assert.Equal(t, "text", result.Field)
	})
}

func TestIsAdventureText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "classic opening",
			text:     "Once upon a time in a kingdom far away...",
			expected: true,
		},
		{
			name:     "keyword in first words",
			text:     "This is a story about a small fox.",
			expected: true,
		},
		{
			name:     "chapter heading",
			text:     "Chapter 1: The Beginning",
			expected: true,
		},
		{
			name:     "prologue",
			text:     "Prologue\nIt began in winter.",
			expected: true,
		},
		{
			name:     "keyword with punctuation",
			text:     "An adventure! That is what we need.",
			expected: true,
		},
		{
			name:     "plain prose",
			text:     "Meeting notes from the quarterly review.",
			expected: false,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAdventureText(tt.text))
		})
	}
}
