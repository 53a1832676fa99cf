// Package textproc cleans markdown formatting from text before speech
// synthesis. Tables and code blocks are removed outright; headers, lists,
// links and emphasis are reduced to their plain text so the narration reads
// naturally.
package textproc

import (
	"regexp"
	"strings"
)

var (
	fencedCodePattern    = regexp.MustCompile("(?s)```[\\w]*\n.*?```")
	tableRowPattern      = regexp.MustCompile(`^\|.*\|$`)
	tableSepPattern      = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
	horizontalPattern    = regexp.MustCompile(`(?m)^[\-\*_]{3,}\s*$`)
	headerPattern        = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	blockquotePattern    = regexp.MustCompile(`^>\s*(.*)$`)
	checkboxItemPattern  = regexp.MustCompile(`^[\*\-\+]\s+\[[xX\s]\]\s+(.+)$`)
	unorderedItemPattern = regexp.MustCompile(`^[\*\-\+]\s+(.+)$`)
	orderedItemPattern   = regexp.MustCompile(`^\d+[\.\)]\s+(.+)$`)
	inlineLinkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	refLinkPattern       = regexp.MustCompile(`\[([^\]]+)\]\[[^\]]*\]`)
	refDefPattern        = regexp.MustCompile(`(?m)^\[[^\]]+\]:\s*.+$`)
	imagePattern         = regexp.MustCompile(`!\[([^\]]*)\]\([^\)]+\)`)
	boldStarPattern      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderPattern     = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern    = regexp.MustCompile(`\*([^\*]+?)\*`)
	italicUnderPattern   = regexp.MustCompile(`\b_([^_]+?)_\b`)
	strikePattern        = regexp.MustCompile(`~~(.+?)~~`)
	inlineCodePattern    = regexp.MustCompile("`([^`]+)`")
	multiSpacePattern    = regexp.MustCompile(`[ \t]+`)
)

// RemoveTables strips markdown table rows and separators.
func RemoveTables(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inTable := false

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if tableRowPattern.MatchString(stripped) || tableSepPattern.MatchString(stripped) {
			inTable = true
			continue
		}
		if inTable && stripped != "" {
			inTable = false
		}
		result = append(result, line)
	}

	return collapseBlankLines(result)
}

// RemoveBullets converts list items, including checkbox items and ordered
// lists, to plain sentences.
func RemoveBullets(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")

		// Checkbox items first so the plain unordered pattern does not
		// partially match them.
		if m := checkboxItemPattern.FindStringSubmatch(stripped); m != nil {
			result = append(result, strings.TrimSpace(m[1]))
			continue
		}
		if m := unorderedItemPattern.FindStringSubmatch(stripped); m != nil {
			result = append(result, strings.TrimSpace(m[1]))
			continue
		}
		if m := orderedItemPattern.FindStringSubmatch(stripped); m != nil {
			result = append(result, strings.TrimSpace(m[1]))
			continue
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// RemoveHeaders converts markdown headers to their plain text.
func RemoveHeaders(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			result = append(result, strings.TrimSpace(m[2]))
			continue
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// RemoveBlockquotes drops blockquote markers, keeping the quoted text.
func RemoveBlockquotes(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if m := blockquotePattern.FindStringSubmatch(line); m != nil {
			result = append(result, m[1])
			continue
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// RemoveEmphasis strips bold, italic, strikethrough and inline code
// markers, keeping the text.
func RemoveEmphasis(text string) string {
	text = boldStarPattern.ReplaceAllString(text, "$1")
	text = boldUnderPattern.ReplaceAllString(text, "$1")
	text = italicStarPattern.ReplaceAllString(text, "$1")
	text = italicUnderPattern.ReplaceAllString(text, "$1")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	return text
}

// RemoveLinks keeps only the link text of inline and reference links, drops
// reference definitions, and keeps image alt text.
func RemoveLinks(text string) string {
	text = imagePattern.ReplaceAllString(text, "$1")
	text = inlineLinkPattern.ReplaceAllString(text, "$1")
	text = refLinkPattern.ReplaceAllString(text, "$1")
	text = refDefPattern.ReplaceAllString(text, "")
	return text
}

// RemoveCodeBlocks drops fenced code blocks. Indented lines are kept since
// they may be intentional formatting.
func RemoveCodeBlocks(text string) string {
	return fencedCodePattern.ReplaceAllString(text, "")
}

// RemoveHorizontalRules drops --- / *** / ___ rule lines.
func RemoveHorizontalRules(text string) string {
	return horizontalPattern.ReplaceAllString(text, "")
}

// CleanForSpeech applies the full cleaning chain in order: code blocks
// first (so their contents cannot confuse later passes), then tables,
// rules, headers, blockquotes, lists, links, emphasis, and finally a
// whitespace cleanup.
func CleanForSpeech(text string) string {
	if text == "" {
		return text
	}

	text = RemoveCodeBlocks(text)
	text = RemoveTables(text)
	text = RemoveHorizontalRules(text)
	text = RemoveHeaders(text)
	text = RemoveBlockquotes(text)
	text = RemoveBullets(text)
	text = RemoveLinks(text)
	text = RemoveEmphasis(text)

	return cleanWhitespace(text)
}

// collapseBlankLines keeps at most two consecutive blank lines.
func collapseBlankLines(lines []string) string {
	var result []string
	blanks := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks <= 2 {
				result = append(result, line)
			}
		} else {
			blanks = 0
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// cleanWhitespace strips trailing space per line, collapses blank-line runs
// and repeated spaces, and trims the whole text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	text = collapseBlankLines(lines)
	text = multiSpacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
