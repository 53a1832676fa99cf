package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/kjingers/tonisynth/internal/naming"
)

func handleFilename(ctx context.Context, c *cli.Command) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	opts := naming.Options{
		MaxLength: int(c.Int("max-length")),
		WordCount: int(c.Int("words")),
	}

	if c.Bool("id") {
		id, err := naming.SynthesisID(text, opts)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	}

	filename, err := naming.FilenameWithSuffix(text, opts, c.String("extension"))
	if err != nil {
		return err
	}
	fmt.Println(filename)
	return nil
}
