// Package namespace discovers the root and model namespaces of a generated
// source tree from the package statements of its files.
package namespace

import (
	"bufio"
	"bytes"
	"strings"
)

// DefaultBoundary is the segment separating the root namespace from the
// generated web layer.
const DefaultBoundary = "web"

// DefaultMarkers are class names that only appear in the model namespace.
var DefaultMarkers = []string{"AuditDetails", "CitizenService"}

// ReadFunc returns the content of one source file.
type ReadFunc func(path string) ([]byte, error)

// Locator scans files in the order given; callers pass them sorted.
type Locator struct {
	boundary string
	markers  map[string]bool
	output   map[string]bool
}

// Option configures a Locator.
type Option func(*Locator)

// WithOutputSegments names the package segments that generated artifacts are
// written under. A declared namespace ending in one of them resolves to its
// parent, so files written by an earlier run report the same root.
func WithOutputSegments(segments ...string) Option {
	return func(l *Locator) {
		for _, s := range segments {
			l.output[s] = true
		}
	}
}

// NewLocator creates a Locator. Empty arguments fall back to defaults.
func NewLocator(boundary string, markers []string, opts ...Option) *Locator {
	if boundary == "" {
		boundary = DefaultBoundary
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	l := &Locator{
		boundary: boundary,
		markers:  make(map[string]bool, len(markers)),
		output:   make(map[string]bool),
	}
	for _, m := range markers {
		l.markers[m] = true
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the root namespace of the first file that declares one.
// Unreadable and undeclared files are skipped.
func (l *Locator) Root(paths []string, read ReadFunc) (string, bool) {
	for _, p := range paths {
		content, err := read(p)
		if err != nil {
			continue
		}
		ns, ok := Declared(content)
		if !ok {
			continue
		}
		if root := l.rootOf(ns); root != "" {
			return root, true
		}
	}
	return "", false
}

// rootOf cuts ns before the boundary segment. A namespace that starts with
// the boundary is kept whole. A trailing output segment is dropped; a
// namespace made only of one yields "".
func (l *Locator) rootOf(ns string) string {
	root := Truncate(ns, l.boundary)
	if root == "" {
		root = ns
	}
	segments := strings.Split(root, ".")
	if last := segments[len(segments)-1]; l.output[last] {
		return strings.Join(segments[:len(segments)-1], ".")
	}
	return root
}

// Model returns the namespace of the first file declaring a marker class.
func (l *Locator) Model(paths []string, read ReadFunc) (string, bool) {
	for _, p := range paths {
		content, err := read(p)
		if err != nil {
			continue
		}
		if !l.declaresMarker(content) {
			continue
		}
		if ns, ok := Declared(content); ok {
			return ns, true
		}
	}
	return "", false
}

func (l *Locator) declaresMarker(content []byte) bool {
	found := false
	eachLine(content, func(line string) bool {
		for _, name := range ClassNames(line) {
			if l.markers[name] {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// Declared returns the namespace from the first line starting with "package ".
func Declared(content []byte) (string, bool) {
	var ns string
	eachLine(content, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "package ") {
			return true
		}
		ns = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "package "), ";"))
		return false
	})
	return ns, ns != ""
}

// Truncate cuts ns before the first segment equal to boundary.
func Truncate(ns, boundary string) string {
	segments := strings.Split(ns, ".")
	for i, s := range segments {
		if s == boundary {
			return strings.Join(segments[:i], ".")
		}
	}
	return ns
}

// ToPath converts a dotted namespace to a slash-separated relative path.
func ToPath(ns string) string {
	return strings.ReplaceAll(ns, ".", "/")
}

// ClassNames returns identifiers that directly follow a "class" keyword on line.
func ClassNames(line string) []string {
	tokens := strings.Fields(line)
	var names []string
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] != "class" {
			continue
		}
		if name := leadingIdentifier(tokens[i+1]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func leadingIdentifier(s string) string {
	end := 0
	for end < len(s) && isIdentChar(s[end]) {
		end++
	}
	return s[:end]
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func eachLine(content []byte, fn func(line string) bool) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if !fn(scanner.Text()) {
			return
		}
	}
}
