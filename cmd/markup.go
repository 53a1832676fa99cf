package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/kjingers/tonisynth/internal/story"
	"github.com/kjingers/tonisynth/internal/story/classify"
	"github.com/kjingers/tonisynth/internal/textproc"
	"github.com/kjingers/tonisynth/internal/validate"
)

func handleMarkup(ctx context.Context, c *cli.Command) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	if result := validate.Text(text, validate.MaxBatchTextLength, validate.MinTextLength, "text"); !result.Valid {
		return fmt.Errorf("%s", result.Error)
	}
	if result := validate.Voice(c.String("voice")); !result.Valid {
		return fmt.Errorf("%s", result.Error)
	}
	if result := validate.Style(c.String("style"), c.String("voice")); !result.Valid {
		return fmt.Errorf("%s", result.Error)
	}
	if result := validate.Preset(c.String("preset")); !result.Valid {
		return fmt.Errorf("%s", result.Error)
	}

	if c.Bool("clean") {
		text = textproc.CleanForSpeech(text)
	}

	config := loadStoryConfig(c)
	opts := config.ParserOptions()

	// CLI flags override config values.
	if preset := c.String("preset"); preset != "" {
		p := story.Presets[preset]
		opts.NarratorVoice = p.Voice
		opts.NarratorStyle = p.Style
	}
	if voice := c.String("voice"); voice != "" {
		opts.NarratorVoice = voice
	}
	if style := c.String("style"); style != "" {
		opts.NarratorStyle = style
	}
	if language := c.String("language"); language != "" {
		opts.Language = language
	}

	simple := c.Bool("simple")
	if c.Bool("auto") && !validate.IsAdventureText(text) {
		log.Debug().Msg("Text does not look like a story, using single-voice markup")
		simple = true
	}

	if simple {
		fmt.Println(story.GenerateSimpleMarkup(text, opts.NarratorVoice, opts.NarratorStyle, opts.Language))
		return nil
	}

	analyzer, err := newAnalyzer(config)
	if err != nil {
		return fmt.Errorf("failed to configure classifier: %w", err)
	}

	parser := story.NewParser(opts, analyzer)
	fmt.Println(story.GenerateCharacterMarkup(ctx, parser, text))
	return nil
}

func handleClean(ctx context.Context, c *cli.Command) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	fmt.Println(textproc.CleanForSpeech(text))
	return nil
}

// newAnalyzer wires the gender analyzer the config selects. Lexicon-only
// configs return a nil analyzer, which keeps parsing fully offline.
func newAnalyzer(config *story.ConfigFile) (*classify.Analyzer, error) {
	if config == nil || !config.Classifier.Enabled() {
		return nil, nil
	}

	classifier, err := config.NewClassifier()
	if err != nil {
		return nil, err
	}
	return classify.NewAnalyzer(classifier, nil), nil
}

// readInput reads text from the file argument, or stdin when no argument is
// given.
func readInput(c *cli.Command) (string, error) {
	if path := c.Args().Get(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no text provided via stdin")
	}
	return string(data), nil
}

// loadStoryConfig loads the story config the flags select. Returns nil when
// configs are disabled or none is found.
func loadStoryConfig(c *cli.Command) *story.ConfigFile {
	if c.Bool("no-config") {
		return nil
	}

	loader := story.NewConfigLoader()

	if configPath := c.String("config"); configPath != "" {
		config, err := loader.LoadFromPath(configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("Failed to load custom config")
			return nil
		}
		return config
	}

	workDir, _ := os.Getwd()
	config, _ := loader.LoadConfig(workDir)
	return config
}
