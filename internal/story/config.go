package story

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kjingers/tonisynth/internal/story/classify"
)

// ConfigFile is the on-disk story configuration.
type ConfigFile struct {
	NarratorVoice string `json:"narratorVoice,omitempty"`
	NarratorStyle string `json:"narratorStyle,omitempty"`
	Language      string `json:"language,omitempty"`

	// Characters pins specific character names to voices.
	Characters map[string]CharacterVoice `json:"characters,omitempty"`

	// ElisionThreshold overrides the attribution re-insertion length.
	ElisionThreshold int `json:"elisionThreshold,omitempty"`

	// Classifier configures the LLM gender-classification tier. Leaving
	// endpoint and apiKey empty keeps the lexicon-only tier.
	Classifier ClassifierConfig `json:"classifier,omitempty"`
}

// ClassifierConfig holds credentials for the LLM classifier tier.
type ClassifierConfig struct {
	Endpoint string `json:"endpoint,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	Model    string `json:"model,omitempty"`
}

// Enabled reports whether the LLM tier is configured. Absence of
// credentials silently selects the lexicon tier.
func (c ClassifierConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// ConfigLoader loads story configuration from files.
type ConfigLoader struct {
	projectPath string
	globalPath  string
}

// NewConfigLoader creates a loader with the standard search paths.
func NewConfigLoader() *ConfigLoader {
	homeDir, _ := os.UserHomeDir()
	return &ConfigLoader{
		projectPath: ".tonisynth/story.json",
		globalPath:  filepath.Join(homeDir, ".tonisynth", "story.json"),
	}
}

// LoadConfig loads configuration with priority:
// 1. Project-local config (.tonisynth/story.json)
// 2. Global config (~/.tonisynth/story.json)
// Returns nil if no config file is found.
func (l *ConfigLoader) LoadConfig(workDir string) (*ConfigFile, error) {
	projectConfigPath := filepath.Join(workDir, l.projectPath)
	if config, err := l.loadFromFile(projectConfigPath); err == nil {
		log.Debug().Str("path", projectConfigPath).Msg("Loaded project story config")
		return config, nil
	}

	if config, err := l.loadFromFile(l.globalPath); err == nil {
		log.Debug().Str("path", l.globalPath).Msg("Loaded global story config")
		return config, nil
	}

	log.Debug().Msg("No story config file found")
	return nil, nil
}

// LoadFromPath loads configuration from a specific path after validating it.
func (l *ConfigLoader) LoadFromPath(path string) (*ConfigFile, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}
	return l.loadFromFile(path)
}

// validateConfigPath checks that the config path is safe to use.
func validateConfigPath(path string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("invalid config path: path traversal not allowed")
	}
	if !strings.HasSuffix(filepath.Clean(path), "story.json") {
		return fmt.Errorf("invalid config path: must be a story.json file")
	}
	return nil
}

func (l *ConfigLoader) loadFromFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	expanded := expandEnvVars(string(data))

	var config ConfigFile
	if err := json.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	l.checkFilePermissions(path)

	return &config, nil
}

// expandEnvVars replaces ${VAR} patterns with environment variable values.
func expandEnvVars(input string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(input, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Don't log variable names for security reasons
		log.Debug().Msg("Referenced environment variable not set in config")
		return ""
	})
}

func (l *ConfigLoader) checkFilePermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		log.Warn().
			Str("permissions", fmt.Sprintf("%04o", mode)).
			Msg("Story config file may contain secrets but has permissive permissions. Consider: chmod 600")
	}
}

var voiceNamePattern = regexp.MustCompile(`^[a-z]{2,3}-[A-Z]{2}-\w+Neural$`)

// Validate checks the configuration and returns human-readable problems.
func (c *ConfigFile) Validate() []string {
	var errors []string

	if c == nil {
		return errors
	}

	if c.NarratorVoice != "" && !voiceNamePattern.MatchString(c.NarratorVoice) {
		errors = append(errors, fmt.Sprintf("narratorVoice: invalid voice format %q, expected 'en-US-VoiceNameNeural'", c.NarratorVoice))
	}

	for name, voice := range c.Characters {
		if voice.VoiceName == "" {
			errors = append(errors, fmt.Sprintf("characters.%s: voice is required", name))
			continue
		}
		if !voiceNamePattern.MatchString(voice.VoiceName) {
			errors = append(errors, fmt.Sprintf("characters.%s: invalid voice format %q", name, voice.VoiceName))
		}
		switch voice.Gender {
		case "", classify.GenderMale, classify.GenderFemale, classify.GenderNeutral:
		default:
			errors = append(errors, fmt.Sprintf("characters.%s: gender must be male, female or neutral", name))
		}
	}

	if c.ElisionThreshold < 0 {
		errors = append(errors, "elisionThreshold: must not be negative")
	}

	if c.Classifier.APIKey != "" && c.Classifier.Model == "" {
		errors = append(errors, "classifier: model is required when apiKey is set")
	}

	return errors
}

// ParserOptions converts the file into parser options, filling defaults for
// anything unset.
func (c *ConfigFile) ParserOptions() ParserOptions {
	opts := DefaultParserOptions()
	if c == nil {
		return opts
	}
	if c.NarratorVoice != "" {
		opts.NarratorVoice = c.NarratorVoice
	}
	if c.NarratorStyle != "" {
		opts.NarratorStyle = c.NarratorStyle
	}
	if c.Language != "" {
		opts.Language = c.Language
	}
	if c.ElisionThreshold > 0 {
		opts.ElisionThreshold = c.ElisionThreshold
	}
	if len(c.Characters) > 0 {
		opts.Overrides = c.Characters
	}
	return opts
}

// NewClassifier builds the gender classifier the config selects: the LLM
// tier when credentials are present, the lexicon tier otherwise.
func (c *ConfigFile) NewClassifier() (classify.Classifier, error) {
	if c == nil || !c.Classifier.Enabled() {
		return classify.NewLexiconClassifier(), nil
	}

	var opts []classify.OpenAIOption
	if c.Classifier.Endpoint != "" {
		opts = append(opts, classify.WithBaseURL(c.Classifier.Endpoint))
	}
	return classify.NewOpenAIClassifier(c.Classifier.APIKey, c.Classifier.Model, opts...)
}

// GenerateExampleConfig generates an example configuration.
func GenerateExampleConfig() string {
	example := ConfigFile{
		NarratorVoice: DefaultNarratorVoice,
		NarratorStyle: DefaultNarratorStyle,
		Language:      DefaultLanguage,
		Characters: map[string]CharacterVoice{
			"princess": {VoiceName: "en-US-JennyNeural", DefaultStyle: "cheerful", Gender: "female"},
			"dragon":   {VoiceName: "en-US-DavisNeural", DefaultStyle: "angry", Gender: "male"},
		},
		ElisionThreshold: DefaultElisionThreshold,
		Classifier: ClassifierConfig{
			Endpoint: "https://example.openai.azure.com/openai/v1",
			APIKey:   "${AZURE_OPENAI_API_KEY}",
			Model:    "gpt-4o-mini",
		},
	}

	data, _ := json.MarshalIndent(example, "", "  ")
	return string(data)
}

// MaskSecrets masks sensitive values in config for display.
func (c *ConfigFile) MaskSecrets() *ConfigFile {
	if c == nil {
		return nil
	}

	masked := *c
	if c.Classifier.APIKey != "" {
		// Only indicate that a key is set, don't reveal any characters
		masked.Classifier.APIKey = fmt.Sprintf("[set, %d chars]", len(c.Classifier.APIKey))
	}
	return &masked
}
