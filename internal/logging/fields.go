// Package logging wraps charmbracelet/log for the textedits CLI.
package logging

// Structured log keys shared by the CLI commands.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldBackup = "backup"
	FieldSource = "source"

	// Edit application.
	FieldEdits   = "edits"
	FieldBytes   = "bytes"
	FieldDelta   = "delta"
	FieldChanged = "changed"
	FieldDryRun  = "dry_run"
	FieldIndex   = "index"

	// Line lookup.
	FieldOffset = "offset"
	FieldUnit   = "unit"

	// Configuration.
	FieldConfig   = "config"
	FieldLoaded   = "loaded_from"
	FieldLogLevel = "log_level"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
