// Package classify infers character genders from story text.
//
// Two implementations of the Classifier capability exist: a lexicon-based
// classifier that works offline from name lists and pronoun counting, and an
// LLM-backed classifier that analyzes the story excerpt with a chat model.
// Selection happens at configuration time; callers never probe for SDK or
// credential availability at runtime.
package classify

import "context"

// Gender categories assigned to characters.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderNeutral = "neutral"
)

// CharacterInfo describes one analyzed character.
type CharacterInfo struct {
	// Name is the canonical character name as found in the text.
	Name string

	// Gender is one of GenderMale, GenderFemale or GenderNeutral.
	Gender string

	// Aliases are other names or titles referring to the same character,
	// lowercased.
	Aliases []string

	// Reasoning explains why this gender was assigned.
	Reasoning string
}

// Classifier analyzes story text and assigns a gender to each candidate
// character name. The returned map is keyed by lowercased character name.
//
// A failed or unusable analysis is reported via the error; callers are
// expected to degrade to GenderNeutral rather than abort.
type Classifier interface {
	Classify(ctx context.Context, text string, names []string) (map[string]CharacterInfo, error)
}
