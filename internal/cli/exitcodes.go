package cli

import (
	"errors"

	"github.com/yaklabco/textedits/internal/configloader"
	"github.com/yaklabco/textedits/pkg/editdoc"
	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/lineutil"
	"github.com/yaklabco/textedits/pkg/textedit"
)

// Exit codes for textedits.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitEditFailure indicates the edits could not be applied or the offset
	// does not fall within the text.
	ExitEditFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInvalidDocument indicates an edit document that failed validation.
	ExitInvalidDocument = 66

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors the commands wrap so ExitCode can classify them.
var (
	// ErrUsage indicates bad arguments or flags.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig indicates the configuration could not be loaded.
	ErrConfig = errors.New("failed to load configuration")

	// ErrEditsRejected is returned after a failing edit set has been reported
	// to the user. main does not log it again.
	ErrEditsRejected = errors.New("edits rejected")

	// ErrFileChanged indicates the target changed between read and write.
	ErrFileChanged = errors.New("file changed on disk while editing")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, editdoc.ErrInvalidDocument):
		return ExitInvalidDocument
	case errors.Is(err, ErrEditsRejected),
		errors.Is(err, textedit.ErrOverlap),
		errors.Is(err, textedit.ErrOutOfRange),
		errors.Is(err, lineutil.ErrOffsetOutOfRange):
		return ExitEditFailure
	case errors.Is(err, ErrFileChanged),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitEditFailure
	}
}
