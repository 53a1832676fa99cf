package story

import (
	"regexp"
	"strings"
)

// expressionEntry binds one style to the attribution patterns that select
// it. Table order is the match priority.
type expressionEntry struct {
	style    string
	patterns []*regexp.Regexp
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// expressionTable maps attribution wording to a speaking style. The first
// style with any matching pattern wins, so "exclaimed" selects shouting
// even though excited also lists it.
var expressionTable = []expressionEntry{
	{"whispering", compileAll(
		`\bwhispered?\b`,
		`\bwhispering\b`,
		`\bquietly\b`,
		`\bsoftly\b`,
		`\bin a low voice\b`,
		`\bhushed\b`,
	)},
	{"shouting", compileAll(
		`\bshouted?\b`,
		`\bshouting\b`,
		`\byelled?\b`,
		`\byelling\b`,
		`\bscreamed?\b`,
		`\bscreaming\b`,
		`\bcried out\b`,
		`\bexclaimed\b`,
	)},
	{"excited", compileAll(
		`\bexcitedly\b`,
		`\bexclaimed\b`,
		`\benthusiastically\b`,
		`\beagerly\b`,
		`\bjoyfully\b`,
	)},
	{"sad", compileAll(
		`\bsadly\b`,
		`\bsorrowfully\b`,
		`\btearfully\b`,
		`\bweeping\b`,
		`\bsobbed?\b`,
		`\bsobbing\b`,
		`\bmournfully\b`,
	)},
	{"angry", compileAll(
		`\bangrily\b`,
		`\bfuriously\b`,
		`\bsnarled?\b`,
		`\bgrowled?\b`,
		`\braged?\b`,
	)},
	{"terrified", compileAll(
		`\bterrified\b`,
		`\bfrightened\b`,
		`\bscared\b`,
		`\btrembling\b`,
		`\bfearfully\b`,
		`\bwith fear\b`,
	)},
	{"cheerful", compileAll(
		`\bcheerfully\b`,
		`\bhappily\b`,
		`\bbrightly\b`,
		`\bwith a smile\b`,
		`\blaughed?\b`,
		`\blaughing\b`,
		`\bgiggled?\b`,
	)},
	{"hopeful", compileAll(
		`\bhopefully\b`,
		`\boptimistically\b`,
		`\bwith hope\b`,
	)},
}

// DetectExpression returns the speaking style suggested by dialogue
// attribution text, or "" when no pattern matches. Matching is
// case-insensitive.
func DetectExpression(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range expressionTable {
		for _, p := range entry.patterns {
			if p.MatchString(lower) {
				return entry.style
			}
		}
	}
	return ""
}
