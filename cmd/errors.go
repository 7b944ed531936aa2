package cmd

import (
	"errors"
	"io/fs"
)

// Every failure reported by repo wraps exactly one of these, so callers can
// branch with errors.Is while the message keeps the offending path.
var (
	ErrHomeDirectoryUnavailable = errors.New("home directory unavailable")
	ErrWorkspaceNotInitialized  = errors.New("repo directory does not exist")
	ErrParentNotFound           = errors.New("parent directory does not exist")
	ErrTargetNotFound           = errors.New("directory does not exist")
	ErrSubdirectoryNotFound     = errors.New("subdirectory does not exist")
	ErrCreateFailed             = errors.New("failed to create directory")
	ErrRemoveFailed             = errors.New("failed to remove directory")
	ErrReadFailed               = errors.New("failed to read directory")
	ErrShellSpawnFailed         = errors.New("failed to start shell")
	ErrShellNonZeroExit         = errors.New("shell exited with an error")
	ErrOutsideWorkspace         = errors.New("path is outside the repo directory")
	ErrNoSubdirectories         = errors.New("no subdirectories")
)

// sysErr strips the op and path from a *fs.PathError so the path is not
// printed twice; the errno stays reachable through errors.Is.
func sysErr(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
