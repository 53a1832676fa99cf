package story

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kjingers/tonisynth/internal/story/classify"
)

// GenderFunc infers a gender for a character name given surrounding
// context text.
type GenderFunc func(ctx context.Context, name, contextText string) string

// VoiceAssigner maps characters to concrete voices.
//
// Resolution order: an explicit per-character override always wins and is
// never cached; then the session cache; otherwise the gender is inferred
// and the next voice of the matching pool is assigned. A single counter is
// shared across all characters in the session, so pools are cycled in
// assignment order. Neutral characters draw from the concatenated
// male+female pools.
//
// The session cache is an unbounded map without locking; one assigner
// serves one parsing session.
type VoiceAssigner struct {
	overrides map[string]CharacterVoice
	cache     map[string]CharacterVoice
	counter   int
	genderFn  GenderFunc
}

// NewVoiceAssigner builds an assigner for one session. Override keys are
// normalized to lowercase. A nil genderFn falls back to the lexicon
// classifier.
func NewVoiceAssigner(overrides map[string]CharacterVoice, genderFn GenderFunc) *VoiceAssigner {
	normalized := make(map[string]CharacterVoice, len(overrides))
	for name, voice := range overrides {
		normalized[normalizeName(name)] = voice
	}
	if genderFn == nil {
		genderFn = func(_ context.Context, name, contextText string) string {
			return classify.DetectGender(name, contextText)
		}
	}
	return &VoiceAssigner{
		overrides: normalized,
		cache:     make(map[string]CharacterVoice),
		genderFn:  genderFn,
	}
}

// Voice returns the voice configuration for a character, creating and
// caching one on first reference.
func (a *VoiceAssigner) Voice(ctx context.Context, character, contextText string) CharacterVoice {
	key := normalizeName(character)

	if voice, ok := a.overrides[key]; ok {
		return voice
	}
	if voice, ok := a.cache[key]; ok {
		return voice
	}

	gender := a.genderFn(ctx, character, contextText)
	voice := CharacterVoice{
		VoiceName: voiceForGender(gender, a.counter),
		Gender:    gender,
	}
	a.counter++
	a.cache[key] = voice

	log.Debug().
		Str("character", character).
		Str("gender", gender).
		Str("voice", voice.VoiceName).
		Msg("Assigned character voice")

	return voice
}

// voiceForGender selects the voice at the given cycle position within the
// gender's pool.
func voiceForGender(gender string, index int) string {
	switch gender {
	case classify.GenderFemale:
		return FemaleVoices[index%len(FemaleVoices)]
	case classify.GenderMale:
		return MaleVoices[index%len(MaleVoices)]
	default:
		// Alternate across both pools for variety.
		all := make([]string, 0, len(MaleVoices)+len(FemaleVoices))
		all = append(all, MaleVoices...)
		all = append(all, FemaleVoices...)
		return all[index%len(all)]
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
