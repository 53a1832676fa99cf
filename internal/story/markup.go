package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// msttsNamespace is the vendor namespace carrying the express-as style
// extension.
const msttsNamespace = "https://www.w3.org/2001/mstts"

// EscapeText escapes special markup characters in literal text. The
// replacement order is fixed, ampersand first, so already-escaped entities
// are never escaped twice.
func EscapeText(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	text = strings.ReplaceAll(text, "'", "&apos;")
	return text
}

// SerializeSegments renders segments as a nested voice markup document.
//
// A new voice scope opens only when the voice changes from the currently
// open one, keeping tag churn minimal when consecutive segments share a
// voice. Styled segments wrap their escaped text in an express-as tag.
func SerializeSegments(segments []Segment, language string) string {
	if language == "" {
		language = DefaultLanguage
	}

	parts := []string{
		fmt.Sprintf("<speak version='1.0' xmlns:mstts='%s' xml:lang='%s'>", msttsNamespace, language),
	}

	currentVoice := ""
	for _, segment := range segments {
		escaped := EscapeText(segment.Text)

		if segment.VoiceName != currentVoice {
			if currentVoice != "" {
				parts = append(parts, "</voice>")
			}
			parts = append(parts, fmt.Sprintf("<voice name='%s'>", segment.VoiceName))
			currentVoice = segment.VoiceName
		}

		if segment.Style != "" {
			parts = append(parts, fmt.Sprintf("<mstts:express-as style='%s'>", segment.Style))
			parts = append(parts, escaped)
			parts = append(parts, "</mstts:express-as>")
		} else {
			parts = append(parts, escaped)
		}
	}

	if currentVoice != "" {
		parts = append(parts, "</voice>")
	}
	parts = append(parts, "</speak>")

	return strings.Join(parts, "\n")
}

// GenerateCharacterMarkup parses text into voiced segments and serializes
// them. This is the multi-voice entry point; p carries the narrator
// configuration, overrides and classifier wiring.
func GenerateCharacterMarkup(ctx context.Context, p *Parser, text string) string {
	segments := p.ParseDialogue(ctx, text)

	log.Debug().
		Int("segments", len(segments)).
		Int("text_length", len(text)).
		Msg("Generated character markup segments")

	return SerializeSegments(segments, p.opts.Language)
}

// GenerateSimpleMarkup renders the whole text under a single voice, with an
// optional style, without any dialogue parsing.
func GenerateSimpleMarkup(text, voice, style, language string) string {
	if language == "" {
		language = DefaultLanguage
	}
	escaped := EscapeText(text)

	if style != "" {
		return fmt.Sprintf(`<speak version='1.0' xmlns:mstts='%s' xml:lang='%s'>
    <voice name='%s'>
        <mstts:express-as style='%s'>
            %s
        </mstts:express-as>
    </voice>
</speak>`, msttsNamespace, language, voice, style, escaped)
	}

	return fmt.Sprintf(`<speak version='1.0' xml:lang='%s'>
    <voice xml:lang='%s' name='%s'>
        %s
    </voice>
</speak>`, language, language, voice, escaped)
}
