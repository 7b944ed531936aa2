package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

// execute runs RootCmd with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetIn(strings.NewReader(""))
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagShell = DefaultShell
		flagLogLevel = defaultLogLevel
	})
	err := RootCmd.Execute()
	return out.String(), err
}

// setHome points the home lookup at a fresh directory.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestRootNoArgs(t *testing.T) {
	setHome(t)
	out, err := execute(t)
	if err != nil {
		t.Fatal(err)
	}
	want := "No command provided. Use 'repo init', 'repo add', 'repo list', 'repo home', 'repo remove', 'repo pick', or 'repo <subdir>'.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRootVersion(t *testing.T) {
	setHome(t)
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "repo version 1.0\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRootSubdirectoryShell(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, "repo", "client")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--shell", "pwd", "client")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(out))
	if got != want {
		t.Errorf("shell ran in %q, want %q", got, want)
	}
}

func TestRootSubdirectoryErrors(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		setHome(t)
		_, err := execute(t, "--shell", "true", "client")
		if !errors.Is(err, ErrWorkspaceNotInitialized) {
			t.Fatalf("err = %v, want ErrWorkspaceNotInitialized", err)
		}
		if !strings.Contains(err.Error(), "repo init") {
			t.Errorf("err = %q, want init guidance", err)
		}
	})

	t.Run("missing subdirectory", func(t *testing.T) {
		home := setHome(t)
		if err := os.Mkdir(filepath.Join(home, "repo"), 0755); err != nil {
			t.Fatal(err)
		}
		_, err := execute(t, "--shell", "true", "nope")
		if !errors.Is(err, ErrSubdirectoryNotFound) {
			t.Fatalf("err = %v, want ErrSubdirectoryNotFound", err)
		}
	})

	t.Run("shell fails", func(t *testing.T) {
		home := setHome(t)
		if err := os.MkdirAll(filepath.Join(home, "repo", "test"), 0755); err != nil {
			t.Fatal(err)
		}
		_, err := execute(t, "--shell", "false", "test")
		if !errors.Is(err, ErrShellNonZeroExit) {
			t.Fatalf("err = %v, want ErrShellNonZeroExit", err)
		}
	})

	t.Run("too many args", func(t *testing.T) {
		setHome(t)
		if _, err := execute(t, "a", "b"); err == nil {
			t.Fatal("expected error for two positional args")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		setHome(t)
		if _, err := execute(t, "--log-level", "loud"); err == nil {
			t.Fatal("expected error for unknown log level")
		}
	})
}

func TestMarkdownUsage(t *testing.T) {
	md := markdownUsage()
	for _, e := range usageEntries {
		if !strings.Contains(md, "`"+e.use+"`") {
			t.Errorf("markdown usage missing %q", e.use)
		}
	}
}
