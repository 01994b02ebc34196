package primary

import "context"

// ConfigKind selects a fixed configuration artifact.
type ConfigKind string

const (
	ConfigSecurity ConfigKind = "security"
	ConfigClient   ConfigKind = "client"
)

// ConfigScaffoldService defines the primary port for namespace-only generators.
type ConfigScaffoldService interface {
	// GenerateConfig writes one configuration unit into the discovered
	// root namespace.
	GenerateConfig(ctx context.Context, req GenerateConfigRequest) (*GenerateConfigResponse, error)
}

// GenerateConfigRequest contains parameters for config generation.
type GenerateConfigRequest struct {
	SourceRoot string
	Kind       ConfigKind
}

// GenerateConfigResponse contains the result of config generation.
type GenerateConfigResponse struct {
	Namespace string
	Path      string
}
