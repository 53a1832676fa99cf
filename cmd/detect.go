package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/kjingers/tonisynth/internal/story/classify"
	"github.com/kjingers/tonisynth/internal/validate"
)

func handleDetect(ctx context.Context, c *cli.Command) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	config := loadStoryConfig(c)
	analyzer, err := newAnalyzer(config)
	if err != nil {
		return fmt.Errorf("failed to configure classifier: %w", err)
	}

	// Single-name mode.
	if name := c.String("name"); name != "" {
		gender, reasoning := detectOne(ctx, analyzer, name, text)
		fmt.Printf("%s: %s (%s)\n", name, gender, reasoning)
		return nil
	}

	names := classify.MineNames(text)
	if len(names) == 0 {
		fmt.Println("No character names found")
		return nil
	}
	sort.Strings(names)

	for _, name := range names {
		gender, reasoning := detectOne(ctx, analyzer, name, text)
		fmt.Printf("%s: %s (%s)\n", name, gender, reasoning)
	}

	if validate.IsAdventureText(text) {
		fmt.Println("\nText looks like a story; multi-voice markup recommended")
	}
	return nil
}

func detectOne(ctx context.Context, analyzer *classify.Analyzer, name, text string) (string, string) {
	if analyzer != nil {
		return analyzer.Gender(ctx, name, text)
	}
	gender := classify.DetectGender(name, text)
	return gender, "lexicon and pronoun analysis"
}
