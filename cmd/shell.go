package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DefaultShell is the program started by home, pick and bare subdirectories.
const DefaultShell = "bash"

// Shell starts an interactive program with inherited streams.
type Shell struct {
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run starts the shell in dir and blocks until it exits. dir must already
// exist. A non-zero exit maps to ErrShellNonZeroExit; anything that keeps
// the program from starting maps to ErrShellSpawnFailed.
func (s Shell) Run(dir string) error {
	if !isTerminal(s.Stdin) {
		log.Debug().Str("shell", s.Program).Msg("stdin is not a terminal, shell will not be interactive")
	}
	log.Debug().Str("shell", s.Program).Str("dir", dir).Msg("starting shell")

	c := exec.Command(s.Program)
	c.Dir = dir
	c.Stdin = s.Stdin
	c.Stdout = s.Stdout
	c.Stderr = s.Stderr
	err := c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w (exit status %d)", ErrShellNonZeroExit, exitErr.ExitCode())
		}
		return fmt.Errorf("%w %s: %w", ErrShellSpawnFailed, s.Program, err)
	}
	return nil
}

// LaunchShell runs the configured shell in dir using the command's streams.
func LaunchShell(c *cobra.Command, dir string) error {
	return Shell{
		Program: flagShell,
		Stdin:   c.InOrStdin(),
		Stdout:  c.OutOrStdout(),
		Stderr:  c.ErrOrStderr(),
	}.Run(dir)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
