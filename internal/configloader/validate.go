package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/textedits/pkg/config"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a single invalid configuration field.
type ValidationError struct {
	// Field is the config key, e.g. "backups.mode".
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every enumerated field of cfg and joins all problems into
// one error. It returns nil for a valid configuration.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if cfg.Color != "" && !cfg.Color.IsValid() {
		errs = append(errs, &ValidationError{
			Field: "color", Value: cfg.Color, Message: "must be auto, always or never",
		})
	}
	if cfg.OffsetUnit != "" && !cfg.OffsetUnit.IsValid() {
		errs = append(errs, &ValidationError{
			Field: "offset_unit", Value: cfg.OffsetUnit, Message: "must be rune, byte or grapheme",
		})
	}
	if cfg.Backups.Mode != "" && !cfg.Backups.Mode.IsValid() {
		errs = append(errs, &ValidationError{
			Field: "backups.mode", Value: cfg.Backups.Mode, Message: "must be sidecar or none",
		})
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Field: "log_level", Value: cfg.LogLevel, Message: "must be debug, info, warn or error",
		})
	}

	return errors.Join(errs...)
}
