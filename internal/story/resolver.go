package story

import (
	"regexp"
	"strings"
)

// Speech verbs recognized in attribution grammar.
const attributionVerbs = `(?:said|asked|replied|whispered|shouted|exclaimed|cried|yelled|murmured|muttered|declared|called|laughed|roared|growled|hissed|screamed|bellowed|demanded|answered|responded|snapped|snarled|cooed|sighed)`

// titledName matches honorific/role-prefixed or two-word capitalized names.
const titledName = `(?:Sir|Lord|Lady|King|Queen|Prince|Princess|The|Dr|Mr|Mrs|Ms)\s+[A-Z][a-z]+|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`

var (
	nameBeforeVerb       = regexp.MustCompile(`^(` + titledName + `)\s+` + attributionVerbs)
	singleNameBeforeVerb = regexp.MustCompile(`^([A-Z][a-z]+)\s+` + attributionVerbs)
	verbThenName         = regexp.MustCompile(attributionVerbs + `\s+((?:Sir|Lord|Lady|King|Queen|Prince|Princess|The|Dr|Mr|Mrs|Ms)\s+[A-Z][a-z]+|the\s+[a-z]+|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	verbThenSingleName   = regexp.MustCompile(attributionVerbs + `\s+([A-Z][a-z]+)`)
	shePronoun           = regexp.MustCompile(`\bshe\b`)
	hePronoun            = regexp.MustCompile(`\bhe\b`)
)

// ResolveCharacter extracts a speaker name from dialogue attribution text.
//
// The grammar is tried in order: titled or two-word name before a speech
// verb, single capitalized name before a verb, name (or "the <role>") after
// a verb, single name after a verb, then a bare "she"/"he" pronoun returned
// verbatim as a deferred gender key. An empty result means the caller falls
// back to the narrator voice.
func ResolveCharacter(attribution string) string {
	if m := nameBeforeVerb.FindStringSubmatch(attribution); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := singleNameBeforeVerb.FindStringSubmatch(attribution); m != nil {
		return m[1]
	}
	if m := verbThenName.FindStringSubmatch(attribution); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := verbThenSingleName.FindStringSubmatch(attribution); m != nil {
		return m[1]
	}

	lower := strings.ToLower(attribution)
	if shePronoun.MatchString(lower) {
		return "she"
	}
	if hePronoun.MatchString(lower) {
		return "he"
	}

	return ""
}
