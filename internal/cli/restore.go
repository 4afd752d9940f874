package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textedits/internal/logging"
	"github.com/yaklabco/textedits/pkg/fsutil"
)

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a file from its backup",
		Long: `Copy the backup taken by "apply --write --backup" back over the file and
delete the backup.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args[0])
		},
	}
}

func runRestore(cmd *cobra.Command, path string) error {
	sess, err := newSession(cmd, nil)
	if err != nil {
		return err
	}

	// Restoring works even when taking new backups is switched off.
	mode := sess.cfg.Backups.Mode
	if mode == "" || mode == fsutil.BackupModeNone {
		mode = fsutil.BackupModeSidecar
	}

	restored, err := fsutil.RestoreBackup(sess.ctx, path, mode)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	if !restored {
		return fmt.Errorf("%w: no backup for %s", fsutil.ErrNotFound, path)
	}

	sess.logger.Info("restored from backup",
		logging.FieldPath, path,
		logging.FieldBackup, fsutil.BackupPath(path, mode),
	)
	return nil
}
