package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textedits/internal/logging"
	"github.com/yaklabco/textedits/pkg/config"
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
)

type lineFlags struct {
	offset   int
	unit     string
	location bool
}

func newLineCommand() *cobra.Command {
	flags := &lineFlags{}

	cmd := &cobra.Command{
		Use:   "line <file> --offset <n>",
		Short: "Print the line surrounding an offset",
		Long: `Print the line that contains the given offset, without its line break.

Offsets count characters by default, so multi-byte text is never split.
Use --unit byte for byte offsets, or --unit grapheme to count user-perceived
characters. An offset equal to the length of the text
refers to its end; an offset on a line break belongs to the line it ends.

Examples:
  textedits line notes.txt --offset 120
  textedits line notes.txt --offset 342 --unit byte
  cat notes.txt | textedits line - --offset 7`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.offset, "offset", "n", 0, "offset into the text")
	cmd.Flags().StringVarP(&flags.unit, "unit", "u", "",
		"offset unit: rune, byte or grapheme (default from config)")
	cmd.Flags().BoolVarP(&flags.location, "location", "l", false, "prefix the line with file:line:column")

	return cmd
}

func runLine(cmd *cobra.Command, path string, flags *lineFlags) error {
	if !cmd.Flags().Changed("offset") {
		return fmt.Errorf("%w: --offset is required", ErrUsage)
	}

	cliCfg := &config.Config{}
	if flags.unit != "" {
		cliCfg.OffsetUnit = lineutil.Unit(flags.unit)
		if !cliCfg.OffsetUnit.IsValid() {
			return fmt.Errorf("%w: unknown unit %q: must be rune, byte or grapheme", ErrUsage, flags.unit)
		}
	}

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}
	unit := sess.cfg.OffsetUnit

	var text []byte
	if path == stdinPath {
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	} else {
		text, _, err = fsutil.ReadFile(sess.ctx, path)
		if err != nil {
			return err
		}
	}

	line, err := lineutil.LineAt(string(text), flags.offset, unit)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	sess.logger.Debug("located line",
		logging.FieldPath, path,
		logging.FieldOffset, flags.offset,
		logging.FieldUnit, unit,
	)

	if flags.location {
		pos, _ := lineutil.NewIndex(string(text)).Position(toByteOffset(string(text), flags.offset, unit))
		fmt.Fprint(sess.stdout, sess.outStyles.FormatLine(path, pos, line))
		return nil
	}
	fmt.Fprintln(sess.stdout, line)
	return nil
}

// toByteOffset converts an offset LineAt has already accepted into bytes.
func toByteOffset(text string, offset int, unit lineutil.Unit) int {
	switch unit {
	case lineutil.UnitByte:
		return offset
	case lineutil.UnitGrapheme:
		byteOffset, _ := lineutil.GraphemeByteOffset(text, offset)
		return byteOffset
	default:
		byteOffset, _ := lineutil.ByteOffset(text, offset)
		return byteOffset
	}
}
