// Package config defines the configuration types for textedits.
// These are plain data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
)

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when writing edited files.
type BackupsConfig struct {
	// Enabled is nil when not set, so a config file can turn backups off.
	Enabled *bool             `yaml:"enabled,omitempty"`
	Mode    fsutil.BackupMode `yaml:"mode,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// Backups configures sidecar backups for --write.
	Backups BackupsConfig `yaml:"backups,omitempty"`

	// Color selects colorized output: auto, always or never.
	Color ColorMode `yaml:"color,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// OffsetUnit is the default unit for line lookups: rune, byte or grapheme.
	OffsetUnit lineutil.Unit `yaml:"offset_unit,omitempty"`

	// CLI-level options (not persisted to config files).

	// Write replaces the target file instead of printing the result.
	Write bool `yaml:"-"`

	// DryRun validates and reports without writing anything.
	DryRun bool `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	enabled := false
	return &Config{
		Backups: BackupsConfig{
			Enabled: &enabled,
			Mode:    fsutil.BackupModeSidecar,
		},
		Color:      ColorAuto,
		LogLevel:   "info",
		OffsetUnit: lineutil.UnitRune,
	}
}

// BackupMode returns the effective backup mode: BackupModeNone unless backups
// are enabled.
func (c *Config) BackupMode() fsutil.BackupMode {
	if c == nil || c.Backups.Enabled == nil || !*c.Backups.Enabled {
		return fsutil.BackupModeNone
	}
	if c.Backups.Mode == "" {
		return fsutil.BackupModeSidecar
	}
	return c.Backups.Mode
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Backups.Enabled != nil {
		enabled := *c.Backups.Enabled
		clone.Backups.Enabled = &enabled
	}
	return &clone
}
