package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textedits/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.txt"+fsutil.BackupSuffix, fsutil.BackupPath("a.txt", fsutil.BackupModeSidecar))
	assert.Equal(t, "", fsutil.BackupPath("a.txt", fsutil.BackupModeNone))
	assert.Equal(t, "a.txt"+fsutil.BackupSuffix, fsutil.BackupPath("a.txt", "unknown"))
}

func TestBackupMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, fsutil.BackupModeSidecar.IsValid())
	assert.True(t, fsutil.BackupModeNone.IsValid())
	assert.False(t, fsutil.BackupMode("xdg").IsValid())
}

func TestCreateAndRestoreBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "original")

	created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.BackupExists(path, fsutil.BackupModeSidecar))

	writeFile(t, path, "edited once")

	created, err = fsutil.CreateBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, created, "existing backup must not be overwritten")

	writeFile(t, path, "edited twice")

	restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
	assert.False(t, fsutil.BackupExists(path, fsutil.BackupModeSidecar))
}

func TestCreateBackup_Disabled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "original")

	created, err := fsutil.CreateBackup(context.Background(), path, fsutil.BackupModeNone)
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, fsutil.BackupExists(path, fsutil.BackupModeNone))
}

func TestCreateBackup_MissingOriginal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")

	_, err := fsutil.CreateBackup(context.Background(), path, fsutil.BackupModeSidecar)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestRestoreBackup_NoBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "current")

	restored, err := fsutil.RestoreBackup(context.Background(), path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, restored)
}
