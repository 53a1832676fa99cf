package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var (
	version  = "dev"
	revision = "none"
)

func main() {
	// Setup logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:  "tonisynth",
		Usage: "Multi-voice story markup generator for neural TTS",
		Description: `tonisynth converts narrative text into speech synthesis markup.
It detects quoted dialogue, figures out who is speaking, assigns each
character a distinct neural voice, and emits nested voice markup ready
for a TTS engine. Non-dialogue text is read by a configurable narrator.`,
		Version: fmt.Sprintf("%s (rev: %s)", version, revision),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "markup",
				Usage:     "Generate voice markup from text (stdin or file)",
				Action:    handleMarkup,
				Aliases:   []string{"m"},
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "simple",
						Usage: "Single-voice markup without dialogue parsing",
					},
					&cli.StringFlag{
						Name:  "voice",
						Usage: "Narrator voice (e.g. en-US-GuyNeural)",
					},
					&cli.StringFlag{
						Name:  "style",
						Usage: "Narrator speaking style",
					},
					&cli.StringFlag{
						Name:  "preset",
						Usage: "Story preset: bedtime, adventure, gentle, cheerful",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Markup language tag",
					},
					&cli.BoolFlag{
						Name:  "clean",
						Usage: "Strip markdown formatting before parsing",
					},
					&cli.BoolFlag{
						Name:  "auto",
						Usage: "Parse dialogue only when the text looks like a story",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a story.json config file",
					},
					&cli.BoolFlag{
						Name:  "no-config",
						Usage: "Ignore config files",
					},
				},
			},
			{
				Name:      "clean",
				Usage:     "Strip markdown formatting for speech",
				Action:    handleClean,
				ArgsUsage: "[file]",
			},
			{
				Name:      "filename",
				Usage:     "Generate a descriptive filename from text",
				Action:    handleFilename,
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "extension",
						Usage: "File extension to append",
						Value: ".mp3",
					},
					&cli.BoolFlag{
						Name:  "id",
						Usage: "Emit a synthesis ID instead of a filename",
					},
					&cli.IntFlag{
						Name:  "words",
						Usage: "Number of leading words to use",
						Value: 6,
					},
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Maximum length of the descriptive part",
						Value: 50,
					},
				},
			},
			{
				Name:    "voices",
				Usage:   "List the built-in voice pools",
				Action:  handleVoices,
				Aliases: []string{"v"},
			},
			{
				Name:   "styles",
				Usage:  "List speaking styles and story presets",
				Action: handleStyles,
			},
			{
				Name:      "detect",
				Usage:     "Detect characters and genders in text",
				Action:    handleDetect,
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Analyze a single character name",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a story.json config file",
					},
					&cli.BoolFlag{
						Name:  "no-config",
						Usage: "Ignore config files",
					},
				},
			},
			{
				Name:  "config",
				Usage: "Manage story configuration",
				Commands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Show the active configuration (secrets masked)",
						Action: handleConfigShow,
					},
					{
						Name:   "validate",
						Usage:  "Validate the active configuration",
						Action: handleConfigValidate,
					},
					{
						Name:   "init",
						Usage:  "Create an example configuration file",
						Action: handleConfigInit,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "global",
								Aliases: []string{"g"},
								Usage:   "Create the global config instead of the project one",
							},
						},
					},
				},
			},
		},
		Before: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Failed to run application")
	}
}
