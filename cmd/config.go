package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/kjingers/tonisynth/internal/story"
)

func handleConfigShow(ctx context.Context, c *cli.Command) error {
	loader := story.NewConfigLoader()

	workDir, _ := os.Getwd()
	config, err := loader.LoadConfig(workDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if config == nil {
		fmt.Println("No story configuration file found.")
		fmt.Println("\nSearched locations:")
		fmt.Println("  - .tonisynth/story.json (project)")
		fmt.Println("  - ~/.tonisynth/story.json (global)")
		fmt.Println("\nRun 'tonisynth config init' to create one.")
		return nil
	}

	masked := config.MaskSecrets()

	output, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}

	fmt.Println("Current story configuration (secrets masked):")
	fmt.Println(string(output))
	return nil
}

func handleConfigValidate(ctx context.Context, c *cli.Command) error {
	loader := story.NewConfigLoader()

	workDir, _ := os.Getwd()
	config, err := loader.LoadConfig(workDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if config == nil {
		fmt.Println("No story configuration file found.")
		return nil
	}

	errors := config.Validate()
	if len(errors) == 0 {
		fmt.Println("✅ Configuration is valid.")
		return nil
	}

	fmt.Println("❌ Configuration has errors:")
	for _, err := range errors {
		fmt.Printf("  - %s\n", err)
	}
	return fmt.Errorf("configuration validation failed")
}

func handleConfigInit(ctx context.Context, c *cli.Command) error {
	var configPath string

	if c.Bool("global") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".tonisynth", "story.json")
	} else {
		configPath = ".tonisynth/story.json"
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	example := story.GenerateExampleConfig()

	// Secure permissions since the file may hold API keys.
	if err := os.WriteFile(configPath, []byte(example), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("✅ Created story configuration: %s\n", configPath)
	fmt.Println("\nEdit the file to pin character voices and configure the classifier.")
	fmt.Println("Use ${ENV_VAR} syntax for sensitive values like API keys.")
	return nil
}
