package classify

import (
	"regexp"
	"strings"
)

// Name mining patterns. These intentionally cast a wide net; the stoplist
// filters obvious false positives afterwards.
const miningVerbs = `(?:said|asked|replied|whispered|shouted|exclaimed|cried|yelled|murmured|declared|called|laughed|roared)`

var (
	titledNamePattern = regexp.MustCompile(`(?:Sir|Lord|Lady|King|Queen|Prince|Princess|Dr|Mr|Mrs|Ms)\s+[A-Z][a-z]+`)
	nameVerbPattern   = regexp.MustCompile(`([A-Z][a-z]+)\s+` + miningVerbs)
	verbNamePattern   = regexp.MustCompile(miningVerbs + `\s+([A-Z][a-z]+)`)
	rolePattern       = regexp.MustCompile(`(?i)the\s+(dragon|knight|wizard|witch|fairy|giant|queen|king|prince|princess|troll|ogre|dwarf|elf)`)
)

// stopwords are capitalized common words that the name patterns pick up but
// that never name a character.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "for": {}, "not": {}, "all": {},
	"can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {}, "out": {},
}

// MineNames extracts candidate character names from story text: titled
// names, names adjacent to speech verbs, and "the <role>" phrases.
func MineNames(text string) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if _, stop := stopwords[strings.ToLower(name)]; stop {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, m := range titledNamePattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range nameVerbPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range verbNamePattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range rolePattern.FindAllStringSubmatch(text, -1) {
		add("the " + strings.ToLower(m[1]))
	}

	return names
}
