package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kjingers/tonisynth/internal/story"
)

var header = color.New(color.Bold, color.FgCyan)

func handleVoices(ctx context.Context, c *cli.Command) error {
	pools := []struct {
		label  string
		voices []string
	}{
		{"female", story.FemaleVoices},
		{"male", story.MaleVoices},
		{"child", story.ChildVoices},
	}

	titleCaser := cases.Title(language.English)

	for _, pool := range pools {
		header.Printf("%s voices:\n", titleCaser.String(pool.label))
		for _, voice := range pool.voices {
			fmt.Printf("  - %s\n", voice)
		}
		fmt.Println()
	}

	header.Println("Narrator:")
	fmt.Printf("  - %s (style: %s)\n", story.DefaultNarratorVoice, story.DefaultNarratorStyle)
	return nil
}

func handleStyles(ctx context.Context, c *cli.Command) error {
	header.Println("Speaking styles per voice:")

	voices := make([]string, 0, len(story.VoiceStyles))
	for voice := range story.VoiceStyles {
		voices = append(voices, voice)
	}
	sort.Strings(voices)

	for _, voice := range voices {
		fmt.Printf("  %s:\n", voice)
		for _, style := range story.VoiceStyles[voice] {
			fmt.Printf("    - %s\n", style)
		}
	}

	fmt.Println()
	header.Println("Story presets:")

	presets := make([]string, 0, len(story.Presets))
	for name := range story.Presets {
		presets = append(presets, name)
	}
	sort.Strings(presets)

	titleCaser := cases.Title(language.English)
	for _, name := range presets {
		preset := story.Presets[name]
		fmt.Printf("  %s: %s (style: %s)\n", titleCaser.String(name), preset.Voice, preset.Style)
	}
	return nil
}
