package story

import (
	"regexp"
	"sort"
	"strings"
)

// Verbs that can introduce dialogue, including actions like smiling or
// nodding that narrators use in place of a speech verb.
const extractionVerbs = `(?:said|asked|replied|whispered|shouted|exclaimed|cried|yelled|murmured|muttered|declared|called|laughed|roared|growled|hissed|screamed|bellowed|demanded|answered|responded|snapped|snarled|cooed|sighed|smiled|grinned|frowned|nodded)`

// Non-speech actions that may precede dialogue across a sentence boundary,
// e.g. `The dragon laughed menacingly. "You shall not pass!"`.
const actionVerbs = `(?:laughed|smiled|grinned|frowned|nodded|sighed|growled|roared|hissed|snarled|chuckled|giggled|snickered|cackled|bellowed|thundered|boomed)`

var (
	// Speaker + verb + trailing clause + comma + quoted text.
	beforeCommaPattern = regexp.MustCompile(`(` + titledName + `)\s+` + extractionVerbs + `[^"]*,\s*"([^"]+)"`)

	// Speaker + verb directly followed by quoted text.
	beforeDirectPattern = regexp.MustCompile(`(` + titledName + `)\s+` + extractionVerbs + `\s*"([^"]+)"`)

	// Speaker + action + sentence terminator + quoted text.
	actionPattern = regexp.MustCompile(`(The\s+[a-z]+|[A-Z][a-z]+)\s+` + actionVerbs + `[^".]*\.\s*"([^"]+)"`)

	// Any quoted span; the trailing attribution is scanned manually.
	quotedSpanPattern = regexp.MustCompile(`"([^"]+)"`)
)

// candidate is a dialogue match proposed by one extraction pass.
type candidate struct {
	DialogueMatch
	priority int
}

// ExtractDialogue finds dialogue spans and their attributions in raw text.
//
// Four ranked passes propose candidates; a single interval-scheduling step
// then accepts them in priority order, rejecting any candidate whose span
// overlaps an already-accepted match. The result is sorted by start offset
// and pairwise non-overlapping.
func ExtractDialogue(text string) []DialogueMatch {
	return resolveOverlaps(rankedCandidates(text))
}

// rankedCandidates runs all extraction passes and returns their proposals
// ordered by pass priority, then by position within each pass.
func rankedCandidates(text string) []candidate {
	var candidates []candidate

	// Pass 1: attribution before the quote, comma style.
	// E.g. `Princess Elena called from the tower, "dialogue"`.
	for _, idx := range beforeCommaPattern.FindAllStringSubmatchIndex(text, -1) {
		character := text[idx[2]:idx[3]]
		candidates = append(candidates, candidate{
			DialogueMatch: DialogueMatch{
				Start:       idx[0],
				End:         idx[1],
				Dialogue:    text[idx[4]:idx[5]],
				Attribution: character + " said",
				Character:   character,
			},
			priority: 1,
		})
	}

	// Pass 2: attribution directly before the quote.
	// E.g. `Mary said "dialogue"`.
	for _, idx := range beforeDirectPattern.FindAllStringSubmatchIndex(text, -1) {
		character := text[idx[2]:idx[3]]
		candidates = append(candidates, candidate{
			DialogueMatch: DialogueMatch{
				Start:       idx[0],
				End:         idx[1],
				Dialogue:    text[idx[4]:idx[5]],
				Attribution: character + " said",
				Character:   character,
			},
			priority: 2,
		})
	}

	// Pass 3: action then dialogue across a sentence boundary.
	for _, idx := range actionPattern.FindAllStringSubmatchIndex(text, -1) {
		character := text[idx[2]:idx[3]]
		candidates = append(candidates, candidate{
			DialogueMatch: DialogueMatch{
				Start:       idx[0],
				End:         idx[1],
				Dialogue:    text[idx[4]:idx[5]],
				Attribution: character + " said",
				Character:   character,
			},
			priority: 3,
		})
	}

	// Pass 4: generic fallback, quoted span plus trailing attribution.
	for _, idx := range quotedSpanPattern.FindAllStringSubmatchIndex(text, -1) {
		attribution, end := trailingAttribution(text, idx[1])
		candidates = append(candidates, candidate{
			DialogueMatch: DialogueMatch{
				Start:       idx[0],
				End:         end,
				Dialogue:    text[idx[2]:idx[3]],
				Attribution: attribution,
				Character:   ResolveCharacter(attribution),
				Expression:  DetectExpression(attribution),
			},
			priority: 4,
		})
	}

	return candidates
}

// trailingAttribution scans the text following a closing quote for the
// attribution clause. Leading whitespace and commas are skipped; the clause
// runs to the next quote, blank line, new capitalized line, or end of text.
func trailingAttribution(text string, from int) (attribution string, end int) {
	i := from
	for i < len(text) && (text[i] == ',' || isSpace(text[i])) {
		i++
	}

	j := i
	for j < len(text) {
		if text[j] == '"' {
			break
		}
		if text[j] == '\n' && j+1 < len(text) {
			next := text[j+1]
			if next == '\n' || (next >= 'A' && next <= 'Z') {
				break
			}
		}
		j++
	}

	return strings.TrimSpace(text[i:j]), j
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// resolveOverlaps accepts candidates in priority order, discarding any
// whose interval intersects an already-accepted match. Ties within a pass
// resolve to the earlier-generated candidate. Accepted matches are returned
// sorted by start offset.
func resolveOverlaps(candidates []candidate) []DialogueMatch {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})

	var accepted []DialogueMatch
	for _, c := range candidates {
		if overlapsAny(accepted, c.Start, c.End) {
			continue
		}
		accepted = append(accepted, c.DialogueMatch)
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}

func overlapsAny(matches []DialogueMatch, start, end int) bool {
	for _, m := range matches {
		if start < m.End && m.Start < end {
			return true
		}
	}
	return false
}
