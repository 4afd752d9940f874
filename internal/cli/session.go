package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/textedits/internal/configloader"
	"github.com/yaklabco/textedits/internal/logging"
	"github.com/yaklabco/textedits/internal/ui/pretty"
	"github.com/yaklabco/textedits/pkg/config"
)

// session is the resolved state a command runs with.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger

	stdout    io.Writer
	stderr    io.Writer
	outStyles *pretty.Styles
	errStyles *pretty.Styles
	width     int
}

// newSession loads the configuration, applying cliCfg and the global flags on
// top, and prepares logging and styles for the command.
func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		color, err := flags.GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cliCfg.LogLevel = "debug"
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := result.Config

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := logging.NewWithWriter(stderr, cfg.LogLevel)
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldLoaded, result.LoadedFrom)
	}

	return &session{
		ctx:       logging.WithLogger(ctx, logger),
		cfg:       cfg,
		logger:    logger,
		stdout:    stdout,
		stderr:    stderr,
		outStyles: pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, stdout)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, stderr)),
		width:     pretty.TerminalWidth(stderr),
	}, nil
}
