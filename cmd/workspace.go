package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
)

// WorkspaceDirName is the name of the repo directory under the home directory.
const WorkspaceDirName = "repo"

// DefaultChildren are created by Init, in this order.
var DefaultChildren = []string{"client", "test", "practice"}

// Swapped in tests that need the home lookup or the filesystem to fail.
var (
	lookupHome = homedir.Dir
	makeDir    = os.Mkdir
	removeTree = os.RemoveAll
)

func init() {
	// The home directory is looked up fresh on every invocation.
	homedir.DisableCache = true
}

// Workspace is the repo directory every command operates on. It is a plain
// value built once per invocation and passed to whatever needs it.
type Workspace struct {
	root string
}

// InitResult describes what Init did. Created holds the repo directory
// first, then each default child that was created, in order.
type InitResult struct {
	Existed bool
	Created []string
}

// OpenWorkspace locates the repo directory under the user's home directory.
// It does not touch the filesystem beyond the home lookup.
func OpenWorkspace() (*Workspace, error) {
	home, err := lookupHome()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHomeDirectoryUnavailable, err)
	}
	if home == "" {
		return nil, ErrHomeDirectoryUnavailable
	}
	return NewWorkspace(filepath.Join(home, WorkspaceDirName)), nil
}

// NewWorkspace returns a Workspace rooted at root.
func NewWorkspace(root string) *Workspace {
	return &Workspace{root: filepath.Clean(root)}
}

// Root returns the absolute path of the repo directory.
func (w *Workspace) Root() string {
	return w.root
}

// Resolve joins rel onto the repo directory. An empty rel yields the root.
// Paths that climb out of the root are rejected.
func (w *Workspace) Resolve(rel string) (string, error) {
	p := filepath.Join(w.root, rel)
	if p != w.root && !strings.HasPrefix(p, w.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, rel)
	}
	return p, nil
}

// Init creates the repo directory and its default children. An existing
// repo directory is left untouched. A failing child stops the run; what was
// already created stays.
func (w *Workspace) Init() (InitResult, error) {
	var res InitResult
	if exists(w.root) {
		log.Debug().Str("root", w.root).Msg("repo directory already present")
		res.Existed = true
		return res, nil
	}

	if err := makeDir(w.root, 0755); err != nil {
		return res, fmt.Errorf("%w %s: %w", ErrCreateFailed, w.root, sysErr(err))
	}
	res.Created = append(res.Created, w.root)

	for _, name := range DefaultChildren {
		p := filepath.Join(w.root, name)
		if err := makeDir(p, 0755); err != nil {
			return res, fmt.Errorf("%w %s: %w", ErrCreateFailed, p, sysErr(err))
		}
		log.Debug().Str("path", p).Msg("created default child")
		res.Created = append(res.Created, p)
	}
	return res, nil
}

// Add creates a single directory named name under parent (or under the root
// when parent is empty). Missing intermediate directories are not created.
func (w *Workspace) Add(name, parent string) (string, error) {
	if err := w.requireRoot(); err != nil {
		return "", err
	}

	parentPath, err := w.Resolve(parent)
	if err != nil {
		return "", err
	}
	if !exists(parentPath) {
		return "", fmt.Errorf("%w: %s", ErrParentNotFound, parentPath)
	}

	target, err := w.Resolve(filepath.Join(parent, name))
	if err != nil {
		return "", err
	}
	if target == parentPath {
		return "", fmt.Errorf("%w %s: empty name", ErrCreateFailed, target)
	}
	if err := w.contains(target); err != nil {
		return "", err
	}

	log.Debug().Str("path", target).Msg("creating directory")
	if err := makeDir(target, 0755); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateFailed, target, sysErr(err))
	}
	return target, nil
}

// List returns the resolved target and the names of its immediate child
// directories, in the order the OS enumerates them. Entries that are not
// directories, or whose metadata cannot be read, are skipped.
func (w *Workspace) List(subdir string) (string, []string, error) {
	if err := w.requireRoot(); err != nil {
		return "", nil, err
	}

	target, err := w.Resolve(subdir)
	if err != nil {
		return "", nil, err
	}
	if !exists(target) {
		return "", nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}

	f, err := os.Open(target)
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %w", ErrReadFailed, target, sysErr(err))
	}
	defer f.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %w", ErrReadFailed, target, sysErr(err))
	}

	var names []string
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(target, e.Name()))
		if err != nil {
			log.Debug().Err(err).Str("entry", e.Name()).Msg("skipping unreadable entry")
			continue
		}
		if info.IsDir() {
			names = append(names, e.Name())
		}
	}
	return target, names, nil
}

// Remove deletes the directory at rel and everything below it. The repo
// directory itself can never be removed this way.
func (w *Workspace) Remove(rel string) (string, error) {
	if err := w.requireRoot(); err != nil {
		return "", err
	}

	target, err := w.Resolve(rel)
	if err != nil {
		return "", err
	}
	if target == w.root {
		return "", fmt.Errorf("%w: refusing to remove %s itself", ErrOutsideWorkspace, w.root)
	}
	if !exists(target) {
		return "", fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}
	if err := w.contains(target); err != nil {
		return "", err
	}

	// A symlink is unlinked; anything else that is not a directory is refused.
	info, err := os.Lstat(target)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRemoveFailed, target, sysErr(err))
	}
	if !info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
		return "", fmt.Errorf("%w %s: %w", ErrRemoveFailed, target, syscall.ENOTDIR)
	}

	log.Debug().Str("path", target).Msg("removing directory tree")
	if err := removeTree(target); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRemoveFailed, target, sysErr(err))
	}
	return target, nil
}

// Dir resolves subdir to an existing path suitable as a shell working
// directory. An empty subdir yields the repo directory.
func (w *Workspace) Dir(subdir string) (string, error) {
	if err := w.requireRoot(); err != nil {
		return "", err
	}

	p, err := w.Resolve(subdir)
	if err != nil {
		return "", err
	}
	if !exists(p) {
		return "", fmt.Errorf("%w: %s", ErrSubdirectoryNotFound, p)
	}
	return p, nil
}

// contains checks that p's parent, with symlinks followed, is still inside
// the repo directory. The last element is left alone so a symlink itself
// can be created or unlinked. Resolve only checks the path text.
func (w *Workspace) contains(p string) error {
	root, err := filepath.EvalSymlinks(w.root)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadFailed, w.root, sysErr(err))
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(p))
	if errors.Is(err, fs.ErrNotExist) {
		// Nothing can be created or removed under a missing parent.
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadFailed, filepath.Dir(p), sysErr(err))
	}
	if dir != root && !strings.HasPrefix(dir, root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s resolves to %s", ErrOutsideWorkspace, p, dir)
	}
	return nil
}

func (w *Workspace) requireRoot() error {
	if !exists(w.root) {
		return fmt.Errorf("%w at %s; run 'repo init' first", ErrWorkspaceNotInitialized, w.root)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
