// Package cliconfig loads the CLI configuration from defaults, an optional
// config file and environment variables, in that priority order.
package cliconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BOOKFIELDS_"

// Config holds the CLI settings.
type Config struct {
	// Locale selects the message catalog used to localize validation issues.
	Locale string `koanf:"locale" validate:"required"`
	// Partial validates drafts: shapes are checked, requiredness is not.
	Partial bool `koanf:"partial"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	// Output is text or json.
	Output string `koanf:"output" validate:"required,oneof=text json"`
}

func defaults() map[string]any {
	return map[string]any{
		"locale":    "en",
		"partial":   false,
		"log_level": "info",
		"output":    "text",
	}
}

// Load builds the configuration. A missing config file is not an error;
// an invalid one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("cliconfig: set default %q: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, fmt.Errorf("cliconfig: load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("cliconfig: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshal: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: invalid configuration: %w", err)
	}
	return &cfg, nil
}
