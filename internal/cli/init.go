package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textedits/internal/logging"
	"github.com/yaklabco/textedits/pkg/config"
	"github.com/yaklabco/textedits/pkg/fsutil"
)

// defaultConfigFile is the project config file created by init.
const defaultConfigFile = ".textedits.yml"

const configHeader = `# textedits configuration
#
# color:        auto, always or never
# log_level:    debug, info, warn or error
# offset_unit:  unit for "textedits line" offsets: rune, byte or grapheme
# backups:      sidecar backups taken by "textedits apply --write"
#
# Every key can be overridden with a TEXTEDITS_* environment variable.`

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .textedits.yml with the default settings",
		Long: `Write a project configuration file holding the default settings.

Examples:
  textedits init                      Create .textedits.yml
  textedits init --output custom.yml  Write to a custom path
  textedits init --force              Overwrite an existing file`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.NewConfig().ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
