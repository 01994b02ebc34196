package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/example/svcscaffold/internal/core/namespace"
	"github.com/example/svcscaffold/internal/templates"
)

// Generator renders artifacts under a source root.
type Generator struct {
	sourceRoot string
}

// NewGenerator creates a new Generator for the given source root.
func NewGenerator(sourceRoot string) *Generator {
	return &Generator{sourceRoot: sourceRoot}
}

// GenerateRepository renders the data-access interface for one entity.
func (g *Generator) GenerateRepository(spec RepositorySpec) (GeneratedFile, error) {
	tmpl, err := templates.GetRepositoryTemplate()
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to load repository template: %w", err)
	}

	content := Render(tmpl, map[string]string{
		templates.TokenPackage:      spec.RootNamespace,
		templates.TokenModelPackage: spec.ModelNamespace,
		templates.TokenClassName:    spec.Entity,
		templates.TokenIDType:       spec.IDType,
		templates.TokenMethods:      spec.Methods,
	})

	return GeneratedFile{
		Path:    g.RepositoryPath(spec.RootNamespace, spec.Entity),
		Content: content,
		Kind:    KindRepository,
	}, nil
}

// GenerateConfig renders one of the fixed configuration units.
func (g *Generator) GenerateConfig(kind ArtifactKind, ns string) (GeneratedFile, error) {
	var (
		tmpl      string
		className string
		err       error
	)
	switch kind {
	case KindSecurityConfig:
		tmpl, err = templates.GetSecurityConfigTemplate()
		className = "SecurityConfig"
	case KindClientConfig:
		tmpl, err = templates.GetClientConfigTemplate()
		className = "DigitClientConfig"
	default:
		return GeneratedFile{}, fmt.Errorf("unknown config artifact %q", kind)
	}
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to load %s template: %w", kind, err)
	}

	return GeneratedFile{
		Path:    g.namespacePath(ns, ConfigSegment, className+".java"),
		Content: Render(tmpl, map[string]string{templates.TokenPackage: ns}),
		Kind:    kind,
	}, nil
}

// RepositoryPath returns <root>/<namespace path>/repository/<Entity>Repository.java.
func (g *Generator) RepositoryPath(ns, entity string) string {
	return g.namespacePath(ns, RepositorySegment, entity+"Repository.java")
}

func (g *Generator) namespacePath(ns string, elem ...string) string {
	parts := []string{g.sourceRoot, filepath.FromSlash(namespace.ToPath(ns))}
	parts = append(parts, elem...)
	return filepath.Join(parts...)
}
