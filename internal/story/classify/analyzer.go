package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// unknownReason is reported when no analysis produced a result for a name.
const unknownReason = "could not determine gender"

// Analyzer answers per-character gender queries against a document, running
// the configured Classifier at most once per document fingerprint. Aliases
// in the analysis let a nickname or role resolve to the same cached
// identity.
type Analyzer struct {
	classifier Classifier
	cache      *Cache
}

// NewAnalyzer wires a classifier to a cache. A nil cache gets a private one
// with default fingerprint length.
func NewAnalyzer(classifier Classifier, cache *Cache) *Analyzer {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Analyzer{
		classifier: classifier,
		cache:      cache,
	}
}

// Gender resolves the gender of one character in the given document,
// consulting the cache first. Classifier failures are logged and degrade to
// GenderNeutral; Gender never returns an error.
func (a *Analyzer) Gender(ctx context.Context, name, text string) (gender, reasoning string) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if cached := a.cache.Get(text); cached != nil {
		if g, r, ok := lookup(cached, lower); ok {
			return g, r
		}
	}

	candidates := MineNames(text)
	if !containsFold(candidates, lower) {
		candidates = append(candidates, name)
	}

	analysis, err := a.classifier.Classify(ctx, text, candidates)
	if err != nil {
		log.Warn().Err(err).Str("character", name).Msg("Character analysis failed")
		return GenderNeutral, unknownReason
	}
	if len(analysis) > 0 {
		a.cache.Put(text, analysis)
	}

	if g, r, ok := lookup(analysis, lower); ok {
		return g, r
	}
	return GenderNeutral, unknownReason
}

// lookup finds a name in an analysis directly or through aliases.
func lookup(analysis map[string]CharacterInfo, lower string) (gender, reasoning string, ok bool) {
	if info, found := analysis[lower]; found {
		return info.Gender, info.Reasoning, true
	}
	for _, info := range analysis {
		for _, alias := range info.Aliases {
			if alias == lower {
				return info.Gender, fmt.Sprintf("alias of %s: %s", info.Name, info.Reasoning), true
			}
		}
	}
	return "", "", false
}

func containsFold(names []string, lower string) bool {
	for _, n := range names {
		if strings.ToLower(n) == lower {
			return true
		}
	}
	return false
}
