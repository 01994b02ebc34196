package scaffold

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingArgument indicates a required command argument was not given.
	ErrMissingArgument = errors.New("svcscaffold: missing argument")
	// ErrInputPathNotFound indicates an input file or directory is absent.
	ErrInputPathNotFound = errors.New("svcscaffold: input path not found")
	// ErrNamespaceNotDetected indicates no source file declared a usable namespace.
	ErrNamespaceNotDetected = errors.New("svcscaffold: namespace not detected")
	// ErrNoQualifyingFiles indicates a batch directory had nothing to process.
	ErrNoQualifyingFiles = errors.New("svcscaffold: no qualifying files found")
	// ErrNoIdentifierField indicates an entity had no resolvable key field.
	ErrNoIdentifierField = errors.New("svcscaffold: no identifier field resolved")
	// ErrFileProcessing indicates one file in a batch failed.
	ErrFileProcessing = errors.New("svcscaffold: file processing failed")
)

// PathError reports an input path that is missing or of the wrong type.
type PathError struct {
	Path  string
	Role  string // "schema document", "source root", "models directory"
	Cause error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	var b strings.Builder
	b.WriteString("svcscaffold: ")
	if e.Role != "" {
		b.WriteString(e.Role)
		b.WriteString(" ")
	}
	b.WriteString("not found: ")
	b.WriteString(e.Path)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for PathError.
func (e *PathError) Is(target error) bool {
	return target == ErrInputPathNotFound
}

// NewPathError creates a new PathError.
func NewPathError(role, path string, cause error) *PathError {
	return &PathError{Path: path, Role: role, Cause: cause}
}

// NamespaceError reports a failed namespace scan.
type NamespaceError struct {
	Which string // "base" or "model"
	Root  string
}

// Error implements the error interface.
func (e *NamespaceError) Error() string {
	return "svcscaffold: could not detect " + e.Which + " namespace under " + e.Root
}

// Is reports whether the target matches the sentinel error for NamespaceError.
func (e *NamespaceError) Is(target error) bool {
	return target == ErrNamespaceNotDetected
}

// NewNamespaceError creates a new NamespaceError.
func NewNamespaceError(which, root string) *NamespaceError {
	return &NamespaceError{Which: which, Root: root}
}

// FileError represents a failure on one file of a batch.
type FileError struct {
	Path  string
	Op    string // "read", "backup", "write"
	Cause error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	var b strings.Builder
	b.WriteString("svcscaffold: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString(e.Path)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for FileError.
func (e *FileError) Is(target error) bool {
	return target == ErrFileProcessing
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, cause error) *FileError {
	return &FileError{Path: path, Op: op, Cause: cause}
}

// EntityError represents a per-entity failure during repository generation.
type EntityError struct {
	Entity string
	Cause  error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	if e.Cause == nil {
		return "svcscaffold: entity " + e.Entity
	}
	return "svcscaffold: entity " + e.Entity + ": " + e.Cause.Error()
}

// Unwrap returns the underlying error.
func (e *EntityError) Unwrap() error {
	return e.Cause
}

// NewEntityError creates a new EntityError.
func NewEntityError(entity string, cause error) *EntityError {
	return &EntityError{Entity: entity, Cause: cause}
}
