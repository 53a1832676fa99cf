package classify

import (
	"context"
	"regexp"
	"strings"
)

// femaleNames and maleNames are common given names, family roles and story
// archetypes with a strongly associated gender. Lookup is by lowercased,
// trimmed name.
var femaleNames = map[string]struct{}{
	"mary": {}, "anna": {}, "emma": {}, "sophia": {}, "olivia": {}, "ava": {},
	"isabella": {}, "mia": {}, "charlotte": {}, "amelia": {}, "harper": {},
	"evelyn": {}, "abigail": {}, "emily": {}, "elizabeth": {}, "sarah": {},
	"rachel": {}, "rebecca": {}, "ruth": {}, "esther": {}, "miriam": {},
	"hannah": {}, "leah": {}, "martha": {}, "maria": {}, "lucy": {},
	"alice": {}, "rose": {}, "grace": {}, "lily": {}, "ella": {},
	"mom": {}, "mommy": {}, "mother": {}, "grandmother": {}, "grandma": {},
	"princess": {}, "queen": {}, "elena": {}, "aurora": {}, "belle": {},
	"cinderella": {}, "ariel": {}, "elsa": {},
	"she": {}, "her": {}, "witch": {}, "fairy": {}, "goddess": {},
}

var maleNames = map[string]struct{}{
	"james": {}, "john": {}, "robert": {}, "michael": {}, "david": {},
	"william": {}, "joseph": {}, "thomas": {}, "charles": {}, "daniel": {},
	"matthew": {}, "anthony": {}, "mark": {}, "paul": {}, "peter": {},
	"luke": {}, "adam": {}, "noah": {}, "abraham": {}, "moses": {},
	"jacob": {}, "isaac": {}, "samuel": {}, "joshua": {},
	"dad": {}, "daddy": {}, "father": {}, "grandfather": {}, "grandpa": {},
	"prince": {}, "king": {}, "jesus": {}, "god": {}, "lord": {}, "sir": {},
	"cedric": {}, "arthur": {}, "lancelot": {}, "merlin": {},
	"he": {}, "him": {}, "dragon": {}, "wizard": {}, "knight": {},
	"giant": {}, "troll": {}, "ogre": {},
}

// Context patterns for pronoun and role counting when the name itself is
// not in either lexicon.
var (
	femaleContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(she|her|mother|mom|mommy|grandmother|grandma|queen|princess|` +
			`aunt|sister|daughter|wife|girl|woman|lady|miss|mrs|ms)\b`),
	}
	maleContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(he|him|his|father|dad|daddy|grandfather|grandpa|king|prince|` +
			`uncle|brother|son|husband|boy|man|gentleman|mr|sir)\b`),
	}
)

// DetectGender returns the likely gender of a character from its name and
// the surrounding context text. The name is checked against the lexicons
// first; otherwise female- and male-indicating tokens in the context are
// counted and the majority wins. A tie yields GenderNeutral.
func DetectGender(name, context string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	if _, ok := femaleNames[lower]; ok {
		return GenderFemale
	}
	if _, ok := maleNames[lower]; ok {
		return GenderMale
	}

	ctxLower := strings.ToLower(context)

	femaleScore := 0
	for _, p := range femaleContextPatterns {
		if p.MatchString(ctxLower) {
			femaleScore++
		}
	}
	maleScore := 0
	for _, p := range maleContextPatterns {
		if p.MatchString(ctxLower) {
			maleScore++
		}
	}

	switch {
	case femaleScore > maleScore:
		return GenderFemale
	case maleScore > femaleScore:
		return GenderMale
	default:
		return GenderNeutral
	}
}

// LexiconClassifier implements Classifier using only DetectGender. It is the
// selection when no LLM endpoint is configured.
type LexiconClassifier struct{}

// NewLexiconClassifier returns a lexicon-only classifier.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

// Classify implements Classifier. It never fails.
func (c *LexiconClassifier) Classify(_ context.Context, text string, names []string) (map[string]CharacterInfo, error) {
	result := make(map[string]CharacterInfo, len(names))
	for _, name := range names {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "" {
			continue
		}
		result[lower] = CharacterInfo{
			Name:      name,
			Gender:    DetectGender(name, text),
			Reasoning: "lexicon and pronoun analysis",
		}
	}
	return result, nil
}
