package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textedits/internal/logging"
	"github.com/yaklabco/textedits/internal/ui/pretty"
	"github.com/yaklabco/textedits/pkg/config"
	"github.com/yaklabco/textedits/pkg/editdoc"
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
	"github.com/yaklabco/textedits/pkg/textedit"
)

// stdinPath names standard input in place of a file path.
const stdinPath = "-"

type applyFlags struct {
	edits  string
	format string
	backup bool
}

func newApplyCommand() *cobra.Command {
	var cfg config.Config
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <file> --edits <document>",
		Short: "Apply an edit document to a file",
		Long:  applyLongDescription,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.edits, "edits", "e", "", `edit document (YAML or JSON), "-" for stdin`)
	cmd.Flags().StringVar(&flags.format, "format", "",
		"edit document format: yaml or json (default: from file extension)")
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "validate the edits and report without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar backup when writing")

	return cmd
}

const applyLongDescription = `Apply every edit in an edit document to a file.

An edit document lists edits by byte offset:

  edits:
    - start: 0
      length: 5
      replacement: "Hello"

Edits are applied all at once: if any edit overlaps another or falls outside
the text, nothing is changed and the failing edit is reported.

The result goes to stdout unless --write is given.

Examples:
  textedits apply notes.txt -e fix.yml            # Print the edited text
  textedits apply notes.txt -e fix.json --write   # Edit the file in place
  textedits apply notes.txt -e fix.yml --dry-run  # Only check the edits
  gen-edits | textedits apply notes.txt -e -      # Read edits from stdin`

func runApply(cmd *cobra.Command, path string, cliCfg *config.Config, flags *applyFlags) error {
	if cmd.Flags().Changed("backup") {
		cliCfg.Backups.Enabled = &flags.backup
	}
	if flags.edits == "" {
		return fmt.Errorf("%w: --edits is required", ErrUsage)
	}
	if flags.edits == stdinPath && path == stdinPath {
		return fmt.Errorf("%w: the file and the edit document cannot both be stdin", ErrUsage)
	}
	if cliCfg.Write && path == stdinPath {
		return fmt.Errorf("%w: --write needs a file, not stdin", ErrUsage)
	}

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := sess.cfg
	logger := logging.FromContext(logging.WithFields(sess.ctx, logging.FieldPath, path))

	set, err := loadEdits(sess.ctx, cmd, flags)
	if err != nil {
		return err
	}
	logger.Debug("loaded edit document", logging.FieldSource, flags.edits, logging.FieldEdits, set.Len())

	content, info, err := readInput(sess.ctx, cmd, path)
	if err != nil {
		return err
	}

	result, err := set.ApplyBytes(content)
	if err != nil {
		fmt.Fprint(sess.stderr, sess.errStyles.FormatEditError(err, sess.width))
		if edits, index, ok := textedit.FailingEdit(err); ok {
			logger.Debug("edit set rejected", logging.FieldIndex, index)
			if pos, ok := lineutil.NewIndex(string(content)).Position(edits[index].Start); ok {
				fmt.Fprintln(sess.stderr, "  at "+sess.errStyles.FormatLocation(path, pos))
			}
		}
		return fmt.Errorf("%w: %w", ErrEditsRejected, err)
	}

	summary := pretty.ApplySummary{
		Path:        path,
		Edits:       set.Len(),
		BytesBefore: len(content),
		BytesAfter:  len(result),
		Changed:     !bytes.Equal(content, result),
		DryRun:      cfg.DryRun,
	}

	switch {
	case cfg.DryRun:
		logger.Debug("dry run", logging.FieldDryRun, true, logging.FieldDelta, len(result)-len(content))
		fmt.Fprint(sess.stdout, sess.outStyles.FormatApplySummary(summary))
		return nil

	case cfg.Write:
		if err := writeResult(sess, info, result, &summary); err != nil {
			return err
		}
		fmt.Fprint(sess.stderr, sess.errStyles.FormatApplySummary(summary))
		return nil

	default:
		if _, err := sess.stdout.Write(result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}

func loadEdits(ctx context.Context, cmd *cobra.Command, flags *applyFlags) (textedit.EditSet, error) {
	format := editdoc.FormatFromPath(flags.edits)
	if flags.format != "" {
		var err error
		format, err = editdoc.ParseFormat(flags.format)
		if err != nil {
			return textedit.EditSet{}, fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}

	var doc *editdoc.Document
	if flags.edits == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return textedit.EditSet{}, fmt.Errorf("read edits from stdin: %w", err)
		}
		doc, err = editdoc.Parse(data, format)
		if err != nil {
			return textedit.EditSet{}, err
		}
	} else {
		var err error
		doc, err = editdoc.LoadAs(ctx, flags.edits, format)
		if err != nil {
			return textedit.EditSet{}, err
		}
	}

	return doc.EditSet(), nil
}

// readInput reads the target file, or stdin for "-". info is nil for stdin.
func readInput(ctx context.Context, cmd *cobra.Command, path string) ([]byte, *fsutil.FileInfo, error) {
	if path == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil, nil
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return content, info, nil
}

// writeResult replaces the file behind info with result, after checking that
// nobody changed it since it was read and taking a backup if enabled.
func writeResult(sess *session, info *fsutil.FileInfo, result []byte, summary *pretty.ApplySummary) error {
	ctx := sess.ctx
	logger := logging.FromContext(ctx)

	if !summary.Changed {
		logger.Debug("edits leave the file unchanged", logging.FieldPath, info.Path)
		return nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fmt.Errorf("check %s: %w", info.Path, err)
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrFileChanged, info.Path)
	}

	mode := sess.cfg.BackupMode()
	created, err := fsutil.CreateBackup(ctx, info.Path, mode)
	if err != nil {
		return err
	}
	if backupPath := fsutil.BackupPath(info.Path, mode); backupPath != "" {
		summary.Backup = backupPath
		if !created {
			logger.Warn("keeping existing backup", logging.FieldBackup, backupPath)
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, info.Path, result, info.Mode.Perm())
	if err != nil {
		return fmt.Errorf("write %s: %w", info.Path, err)
	}
	summary.Written = written

	logger.Debug("applied edits",
		logging.FieldPath, info.Path,
		logging.FieldEdits, summary.Edits,
		logging.FieldBytes, summary.BytesAfter,
		logging.FieldChanged, written,
	)
	return nil
}
