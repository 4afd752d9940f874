package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/textedits/pkg/config"
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
)

// envVarPrefix is the prefix for all textedits environment variables.
const envVarPrefix = "TEXTEDITS_"

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]func(cfg *config.Config, value string) error{
	"COLOR": func(cfg *config.Config, value string) error {
		cfg.Color = config.ColorMode(value)
		return nil
	},
	"LOG_LEVEL": func(cfg *config.Config, value string) error {
		cfg.LogLevel = value
		return nil
	},
	"OFFSET_UNIT": func(cfg *config.Config, value string) error {
		cfg.OffsetUnit = lineutil.Unit(value)
		return nil
	},
	"BACKUPS_MODE": func(cfg *config.Config, value string) error {
		cfg.Backups.Mode = fsutil.BackupMode(value)
		return nil
	},
	"BACKUPS_ENABLED": func(cfg *config.Config, value string) error {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0: %w", err)
		}
		cfg.Backups.Enabled = &enabled
		return nil
	},
}

// LoadFromEnv applies TEXTEDITS_* environment variable overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, set := range envMappings {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", envVar, value, err)
		}
	}

	return nil
}

// ListEnvVars returns every supported environment variable with a description.
func ListEnvVars() map[string]string {
	return map[string]string{
		envVarPrefix + "COLOR":           "Colorize output: auto, always or never",
		envVarPrefix + "LOG_LEVEL":       "Log level: debug, info, warn or error",
		envVarPrefix + "OFFSET_UNIT":     "Default offset unit for line lookups: rune, byte or grapheme",
		envVarPrefix + "BACKUPS_ENABLED": "Create sidecar backups when writing: true or false",
		envVarPrefix + "BACKUPS_MODE":    "Backup mode: sidecar or none",
	}
}
