// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"

	"github.com/example/svcscaffold/internal/core/schema"
)

// SourceTree defines the secondary port for reading a generated source tree.
type SourceTree interface {
	// ListSourceFiles returns every file under root with the given
	// extension, recursively, in lexical walk order.
	ListSourceFiles(ctx context.Context, root, ext string) ([]string, error)

	// ReadFile returns the content of one file.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// ArtifactWriter defines the secondary port for materializing rendered files.
type ArtifactWriter interface {
	// WriteArtifact creates missing parent directories and overwrites path.
	WriteArtifact(ctx context.Context, path string, content []byte) error
}

// ModelStore defines the secondary port for in-place model file rewrites.
type ModelStore interface {
	// ListDirectFiles returns direct children of dir with the given
	// extension, sorted by name. Subdirectories are not descended.
	ListDirectFiles(ctx context.Context, dir, ext string) ([]string, error)

	// ReadFile returns the content of one file.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// BackupIfAbsent copies path to backupPath unless backupPath exists.
	// It reports whether a copy was made.
	BackupIfAbsent(ctx context.Context, path, backupPath string) (bool, error)

	// WriteAtomic replaces path with content via a temporary sibling file
	// and a rename.
	WriteAtomic(ctx context.Context, path string, content []byte) error
}

// SchemaLoader defines the secondary port for reading an API schema document.
type SchemaLoader interface {
	// Load parses the document at path into an ordered mapping.
	Load(ctx context.Context, path string) (*schema.Mapping, error)
}
