package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textedits/internal/configloader"
	"github.com/yaklabco/textedits/pkg/config"
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
)

// isolate points the user config at an empty directory, clears TEXTEDITS_*
// variables and returns a working directory marked as a VCS root.
func isolate(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for name := range configloader.ListEnvVars() {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, ".git"), 0o755))
	return workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	workDir := isolate(t)

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_Precedence(t *testing.T) {
	workDir := isolate(t)

	userPath := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "textedits", "config.yaml")
	writeFile(t, userPath, "color: always\nlog_level: debug\noffset_unit: byte\n")

	projectPath := filepath.Join(workDir, ".textedits.yml")
	writeFile(t, projectPath, "color: never\nbackups:\n  enabled: true\n")

	explicitPath := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicitPath, "log_level: warn\n")

	t.Setenv("TEXTEDITS_OFFSET_UNIT", "rune")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: explicitPath,
		CLIConfig:    &config.Config{Write: true},
	})
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, config.ColorNever, cfg.Color, "project overrides user")
	assert.Equal(t, "warn", cfg.LogLevel, "explicit overrides user")
	assert.Equal(t, lineutil.UnitRune, cfg.OffsetUnit, "env overrides user")
	assert.Equal(t, fsutil.BackupModeSidecar, cfg.BackupMode())
	assert.True(t, cfg.Write)
	assert.Equal(t, []string{userPath, projectPath, explicitPath}, result.LoadedFrom)
}

func TestLoad_SubdirectoryFindsProjectConfig(t *testing.T) {
	workDir := isolate(t)

	writeFile(t, filepath.Join(workDir, ".textedits.yaml"), "offset_unit: byte\n")
	subDir := filepath.Join(workDir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: subDir})
	require.NoError(t, err)
	assert.Equal(t, lineutil.UnitByte, result.Config.OffsetUnit)
}

func TestLoad_IgnoreFlags(t *testing.T) {
	workDir := isolate(t)

	writeFile(t, filepath.Join(workDir, ".textedits.yml"), "color: never\n")
	t.Setenv("TEXTEDITS_LOG_LEVEL", "error")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:          workDir,
		IgnoreProjectConfig: true,
		IgnoreEnv:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, result.Config.Color)
	assert.Equal(t, "info", result.Config.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	workDir := isolate(t)

	writeFile(t, filepath.Join(workDir, ".env"), "TEXTEDITS_LOG_LEVEL=debug\nTEXTEDITS_COLOR=never\n")
	t.Setenv("TEXTEDITS_COLOR", "always")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "debug", result.Config.LogLevel)
	assert.Equal(t, config.ColorAlways, result.Config.Color, "existing environment wins over .env")
	assert.Contains(t, result.LoadedFrom, filepath.Join(workDir, ".env"))
}

func TestLoad_InvalidFile(t *testing.T) {
	workDir := isolate(t)

	writeFile(t, filepath.Join(workDir, ".textedits.yml"), "colour: never\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: workDir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestLoad_InvalidValues(t *testing.T) {
	workDir := isolate(t)

	t.Setenv("TEXTEDITS_OFFSET_UNIT", "word")
	t.Setenv("TEXTEDITS_BACKUPS_MODE", "git")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: workDir})
	require.ErrorIs(t, err, configloader.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "offset_unit")
	assert.Contains(t, err.Error(), "backups.mode")
}

func TestLoad_InvalidBoolEnv(t *testing.T) {
	workDir := isolate(t)

	t.Setenv("TEXTEDITS_BACKUPS_ENABLED", "sometimes")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: workDir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEXTEDITS_BACKUPS_ENABLED")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	workDir := isolate(t)

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: filepath.Join(workDir, "nope.yaml"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit config")
}

func TestLoad_CancelledContext(t *testing.T) {
	workDir := isolate(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := configloader.Load(ctx, configloader.LoadOptions{WorkingDir: workDir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".textedits.yml"), "color: never\n")

	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := configloader.FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = configloader.FindProjectConfig(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".textedits.yml"), found)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, configloader.Validate(nil))
	require.NoError(t, configloader.Validate(config.NewConfig()))
	require.NoError(t, configloader.Validate(&config.Config{LogLevel: "WARNING"}))

	err := configloader.Validate(&config.Config{Color: "sometimes", LogLevel: "trace"})
	require.ErrorIs(t, err, configloader.ErrInvalidConfig)

	var valErr *configloader.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "color", valErr.Field)
	assert.Contains(t, err.Error(), "log_level")
}
