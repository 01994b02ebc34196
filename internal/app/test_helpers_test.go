package app

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/example/svcscaffold/internal/core/schema"
	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// ============================================================================
// Mock Implementations
// ============================================================================

var (
	_ secondary.SourceTree     = (*mockSourceTree)(nil)
	_ secondary.ArtifactWriter = (*mockArtifactWriter)(nil)
	_ secondary.ModelStore     = (*mockModelStore)(nil)
	_ secondary.SchemaLoader   = (*mockSchemaLoader)(nil)
)

// mockSourceTree implements secondary.SourceTree over an in-memory file set.
type mockSourceTree struct {
	files    map[string]string
	readErrs map[string]error
	listErr  error
}

func newMockSourceTree() *mockSourceTree {
	return &mockSourceTree{
		files:    make(map[string]string),
		readErrs: make(map[string]error),
	}
}

func (m *mockSourceTree) add(path, content string) *mockSourceTree {
	m.files[path] = content
	return m
}

func (m *mockSourceTree) ListSourceFiles(ctx context.Context, root, ext string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var paths []string
	for p := range m.files {
		if strings.HasPrefix(p, root) && strings.HasSuffix(p, ext) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (m *mockSourceTree) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := m.readErrs[path]; err != nil {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

// mockArtifactWriter implements secondary.ArtifactWriter by recording writes.
type mockArtifactWriter struct {
	written   map[string]string
	order     []string
	writeErrs map[string]error
}

func newMockArtifactWriter() *mockArtifactWriter {
	return &mockArtifactWriter{
		written:   make(map[string]string),
		writeErrs: make(map[string]error),
	}
}

func (m *mockArtifactWriter) WriteArtifact(ctx context.Context, path string, content []byte) error {
	if err := m.writeErrs[path]; err != nil {
		return err
	}
	m.written[path] = string(content)
	m.order = append(m.order, path)
	return nil
}

// mockModelStore implements secondary.ModelStore over an in-memory directory.
type mockModelStore struct {
	files     map[string]string
	backups   map[string]string
	listErr   error
	readErrs  map[string]error
	backupErr error
	writeErr  error
	writes    int
	panicPath string
}

func newMockModelStore() *mockModelStore {
	return &mockModelStore{
		files:    make(map[string]string),
		backups:  make(map[string]string),
		readErrs: make(map[string]error),
	}
}

func (m *mockModelStore) ListDirectFiles(ctx context.Context, dir, ext string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var paths []string
	for p := range m.files {
		if strings.HasSuffix(p, ext) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (m *mockModelStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if path == m.panicPath {
		panic("corrupt read buffer")
	}
	if err := m.readErrs[path]; err != nil {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

func (m *mockModelStore) BackupIfAbsent(ctx context.Context, path, backupPath string) (bool, error) {
	if m.backupErr != nil {
		return false, m.backupErr
	}
	if _, ok := m.backups[backupPath]; ok {
		return false, nil
	}
	m.backups[backupPath] = m.files[path]
	return true, nil
}

func (m *mockModelStore) WriteAtomic(ctx context.Context, path string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = string(content)
	m.writes++
	return nil
}

// mockSchemaLoader implements secondary.SchemaLoader with a fixed document.
type mockSchemaLoader struct {
	doc     *schema.Mapping
	loadErr error
	loaded  []string
}

func (m *mockSchemaLoader) Load(ctx context.Context, path string) (*schema.Mapping, error) {
	m.loaded = append(m.loaded, path)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.doc == nil {
		return nil, errors.New("no document configured")
	}
	return m.doc, nil
}

// ============================================================================
// Fixtures
// ============================================================================

type prop struct {
	name, typ, format string
}

type entitySpec struct {
	name  string
	props []prop
}

func entity(name string, props ...prop) entitySpec {
	return entitySpec{name: name, props: props}
}

// schemaDoc builds components.schemas with entities in the given order.
func schemaDoc(entities ...entitySpec) *schema.Mapping {
	schemas := schema.NewMapping()
	for _, e := range entities {
		props := schema.NewMapping()
		for _, p := range e.props {
			field := schema.NewMapping()
			if p.typ != "" {
				field.Set("type", p.typ)
			}
			if p.format != "" {
				field.Set("format", p.format)
			}
			props.Set(p.name, field)
		}
		shape := schema.NewMapping()
		shape.Set("type", "object")
		shape.Set("properties", props)
		schemas.Set(e.name, shape)
	}
	components := schema.NewMapping()
	components.Set("schemas", schemas)
	doc := schema.NewMapping()
	doc.Set("openapi", "3.0.1")
	doc.Set("components", components)
	return doc
}

// generatedTree is a minimal generated service source tree.
func generatedTree() *mockSourceTree {
	return newMockSourceTree().
		add("/src/org/egov/Main.java", "package org.egov;\n\npublic class Main {}\n").
		add("/src/org/egov/web/controllers/Api.java", "package org.egov.web.controllers;\n\npublic class Api {}\n").
		add("/src/org/egov/web/models/AuditDetails.java", "package org.egov.web.models;\n\npublic class AuditDetails {\n}\n")
}

func testDiscovery() DiscoverySettings {
	return DiscoverySettings{
		Extension: ".java",
		Boundary:  "web",
		Markers:   []string{"AuditDetails", "CitizenService"},
		Output:    scaffold.OutputSegments(),
	}
}
