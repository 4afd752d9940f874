package configloader

import "github.com/yaklabco/textedits/pkg/config"

// merge combines two configurations, with override taking precedence.
// Zero values in override leave base untouched.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.OffsetUnit != "" {
		result.OffsetUnit = override.OffsetUnit
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled != nil {
		enabled := *override.Backups.Enabled
		result.Backups.Enabled = &enabled
	}

	// CLI-only booleans can only be switched on.
	if override.Write {
		result.Write = true
	}
	if override.DryRun {
		result.DryRun = true
	}

	return result
}
