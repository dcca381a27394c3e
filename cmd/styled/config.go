package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/recera/styled/internal/extract"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file.
// It must be called after cobra parses flags (PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".styled.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// STYLED_EXTRACT_MINIFY -> extract.minify
	if err := k.Load(env.Provider("STYLED_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLED_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// buildExtractConfig constructs the extraction config from koanf state.
func buildExtractConfig() extract.Config {
	cfg := extract.Config{
		Validate: k.Bool("validate"),
		Compat:   k.Bool("compat"),
		Minify:   k.Bool("minify"),
		Capacity: k.Int("capacity"),
	}
	if includes := k.Strings("include"); len(includes) > 0 {
		cfg.Includes = includes
	} else if includes := k.Strings("extract.include"); len(includes) > 0 {
		cfg.Includes = includes
	} else {
		cfg.Includes = []string{"**/*.css"}
	}
	return cfg
}
