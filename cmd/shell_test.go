package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestShellRun(t *testing.T) {
	t.Run("runs in directory", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		err := Shell{Program: "pwd", Stdin: strings.NewReader(""), Stdout: &out}.Run(dir)
		if err != nil {
			t.Fatal(err)
		}

		want, _ := filepath.EvalSymlinks(dir)
		got, _ := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
		if got != want {
			t.Errorf("working directory = %q, want %q", got, want)
		}
	})

	t.Run("zero exit", func(t *testing.T) {
		if err := (Shell{Program: "true"}).Run(t.TempDir()); err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		err := Shell{Program: "false"}.Run(t.TempDir())
		if !errors.Is(err, ErrShellNonZeroExit) {
			t.Fatalf("err = %v, want ErrShellNonZeroExit", err)
		}
		if !strings.Contains(err.Error(), "exit status 1") {
			t.Errorf("err = %q, want exit status in message", err)
		}
	})

	t.Run("missing program", func(t *testing.T) {
		err := Shell{Program: "repo-test-no-such-shell"}.Run(t.TempDir())
		if !errors.Is(err, ErrShellSpawnFailed) {
			t.Fatalf("err = %v, want ErrShellSpawnFailed", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		err := Shell{Program: "true"}.Run(filepath.Join(t.TempDir(), "gone"))
		if !errors.Is(err, ErrShellSpawnFailed) {
			t.Fatalf("err = %v, want ErrShellSpawnFailed", err)
		}
	})
}
