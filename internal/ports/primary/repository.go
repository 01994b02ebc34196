package primary

import "context"

// RepositoryService defines the primary port for data-access interface generation.
type RepositoryService interface {
	// GenerateRepositories renders one repository per persistent, keyed
	// entity of the schema document into the source tree.
	GenerateRepositories(ctx context.Context, req GenerateRepositoriesRequest) (*GenerateRepositoriesResponse, error)
}

// GenerateRepositoriesRequest contains parameters for repository generation.
type GenerateRepositoriesRequest struct {
	SchemaPath      string
	SourceRoot      string
	HonorIDOverride bool // Prefer x-id-field over the naming heuristic
}

// GenerateRepositoriesResponse contains the result of repository generation.
type GenerateRepositoriesResponse struct {
	RootNamespace  string
	ModelNamespace string
	Generated      []GeneratedRepository
	Skipped        []SkippedEntity
}

// GeneratedRepository describes one written repository file.
type GeneratedRepository struct {
	Entity     string
	Path       string
	KeyField   string
	KeyType    string
	KeyRule    string   // Identifier rule that selected the key
	Methods    []string // Finder method names in emitted order
	Collisions []string // Finder names emitted more than once
}

// SkippedEntity records why an entity produced no artifact.
type SkippedEntity struct {
	Entity string
	Reason string
}
