// Package scaffold renders Java source artifacts for a generated service
// project from embedded templates.
package scaffold

// ArtifactKind identifies which template produced a file.
type ArtifactKind string

const (
	KindRepository     ArtifactKind = "repository"
	KindSecurityConfig ArtifactKind = "security-config"
	KindClientConfig   ArtifactKind = "client-config"
)

// GeneratedFile represents a rendered file that has not been written yet.
type GeneratedFile struct {
	Path    string       // Target path under the source root
	Content string       // Fully rendered content
	Kind    ArtifactKind // Template that produced it
}

// RepositorySpec contains all information needed to render one
// data-access interface.
type RepositorySpec struct {
	RootNamespace  string // e.g. "org.egov.pgr"
	ModelNamespace string // e.g. "org.egov.pgr.web.models"
	Entity         string // e.g. "ServiceRequest"
	IDType         string // boxed key type: String, Integer, ...
	Methods        string // pre-rendered finder members
}

// Package segments artifacts are written under, below the root namespace.
const (
	RepositorySegment = "repository"
	ConfigSegment     = "config"
)

// OutputSegments lists every segment the Generator writes under.
func OutputSegments() []string {
	return []string{RepositorySegment, ConfigSegment}
}
