// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// WorkspaceAdapter implements the source tree, artifact and model store
// ports on the local filesystem.
type WorkspaceAdapter struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
func NewWorkspaceAdapter() *WorkspaceAdapter {
	return &WorkspaceAdapter{
		dirPerm:  0755,
		filePerm: 0644,
	}
}

// ListSourceFiles walks root in lexical order collecting files with ext.
func (a *WorkspaceAdapter) ListSourceFiles(ctx context.Context, root, ext string) ([]string, error) {
	if err := requireDir("source root", root); err != nil {
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// ReadFile returns the content of path.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteArtifact creates parent directories and overwrites path.
func (a *WorkspaceAdapter) WriteArtifact(ctx context.Context, path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), a.dirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, content, a.filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ListDirectFiles returns direct children of dir ending in ext, sorted by name.
func (a *WorkspaceAdapter) ListDirectFiles(ctx context.Context, dir, ext string) ([]string, error) {
	if err := requireDir("models directory", dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// BackupIfAbsent copies path to backupPath only when backupPath does not
// exist. An existing backup is never refreshed.
func (a *WorkspaceAdapter) BackupIfAbsent(ctx context.Context, path, backupPath string) (bool, error) {
	src, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer src.Close()

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, a.filePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return false, fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return false, fmt.Errorf("failed to close backup: %w", err)
	}
	return true, nil
}

// WriteAtomic writes content to a temporary sibling and renames it over path.
func (a *WorkspaceAdapter) WriteAtomic(ctx context.Context, path string, content []byte) error {
	perm := a.filePerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func requireDir(role, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return scaffold.NewPathError(role, path, err)
	}
	if !info.IsDir() {
		return scaffold.NewPathError(role, path, errors.New("not a directory"))
	}
	return nil
}

// Ensure WorkspaceAdapter implements the interfaces
var (
	_ secondary.SourceTree     = (*WorkspaceAdapter)(nil)
	_ secondary.ArtifactWriter = (*WorkspaceAdapter)(nil)
	_ secondary.ModelStore     = (*WorkspaceAdapter)(nil)
)
