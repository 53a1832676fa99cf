// Package story turns narrative text containing dialogue into a
// voice-annotated markup document for a multi-voice speech synthesizer.
// Narration is read by a narrator voice; each detected line of dialogue is
// assigned a voice matching the inferred speaker, with an optional
// expression style derived from the attribution.
package story

// CharacterVoice is the voice configuration bound to one character.
type CharacterVoice struct {
	VoiceName    string `json:"voice"`
	DefaultStyle string `json:"style,omitempty"`
	Gender       string `json:"gender,omitempty"` // male, female, neutral
}

// Segment is one contiguous output unit carrying a single voice/style
// pairing. Order is significant.
type Segment struct {
	Text       string
	VoiceName  string
	Style      string
	IsDialogue bool
	Character  string
}

// DialogueMatch is one accepted dialogue span with its attribution.
// Invariant: 0 <= Start < End <= len(text); the accepted set is pairwise
// non-overlapping.
type DialogueMatch struct {
	Start       int
	End         int
	Dialogue    string
	Attribution string
	Character   string
	Expression  string
}

// Voice pools, partitioned by gender. Read-only at runtime; assignment
// cycles through a pool in order.
var (
	// FemaleVoices support expressive styles.
	FemaleVoices = []string{
		"en-US-JennyNeural", // versatile, many styles
		"en-US-AriaNeural",  // expressive
		"en-US-SaraNeural",  // warm
	}

	// MaleVoices support expressive styles.
	MaleVoices = []string{
		"en-US-GuyNeural",   // deep, versatile
		"en-US-DavisNeural", // expressive
		"en-US-TonyNeural",  // friendly
	}

	// ChildVoices are available for explicit overrides only.
	ChildVoices = []string{
		"en-US-AnaNeural",
	}
)

// Narrator defaults.
const (
	DefaultNarratorVoice = "en-US-GuyNeural"
	DefaultNarratorStyle = "friendly"
)

// DefaultLanguage is the xml:lang attribute of the markup envelope.
const DefaultLanguage = "en-US"

// DefaultElisionThreshold is the attribution length (in characters, after
// trimming) above which the attribution is re-inserted as narration.
// Shorter attributions are elided because the voice switch already conveys
// them.
const DefaultElisionThreshold = 20

// VoiceStyles lists the expression styles each catalogue voice supports.
var VoiceStyles = map[string][]string{
	"en-US-AriaNeural": {
		"angry", "cheerful", "excited", "friendly", "hopeful",
		"sad", "shouting", "terrified", "unfriendly", "whispering",
	},
	"en-US-DavisNeural": {
		"angry", "cheerful", "excited", "friendly", "hopeful",
		"sad", "shouting", "terrified", "unfriendly", "whispering",
	},
	"en-US-GuyNeural": {
		"angry", "cheerful", "excited", "friendly", "hopeful",
		"newscast", "sad", "shouting", "terrified", "unfriendly", "whispering",
	},
	"en-US-JennyNeural": {
		"angry", "assistant", "chat", "cheerful", "customerservice",
		"excited", "friendly", "hopeful", "newscast", "sad", "shouting",
		"terrified", "unfriendly", "whispering",
	},
	"en-US-SaraNeural": {
		"angry", "cheerful", "excited", "friendly", "hopeful",
		"sad", "shouting", "terrified", "unfriendly", "whispering",
	},
}

// Preset bundles a voice/style recommendation for a story type.
type Preset struct {
	Voice string
	Style string
}

// Presets are recommended settings for common story types.
var Presets = map[string]Preset{
	"bedtime":   {Voice: "en-US-JennyNeural"}, // calm, soothing default
	"adventure": {Voice: "en-US-DavisNeural", Style: "excited"},
	"gentle":    {Voice: "en-US-AriaNeural", Style: "friendly"},
	"cheerful":  {Voice: "en-US-SaraNeural", Style: "cheerful"},
}
