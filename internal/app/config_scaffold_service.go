package app

import (
	"context"
	"fmt"

	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// ConfigScaffoldServiceImpl implements the ConfigScaffoldService interface.
type ConfigScaffoldServiceImpl struct {
	tree      secondary.SourceTree
	writer    secondary.ArtifactWriter
	log       logger.Logger
	discovery DiscoverySettings
}

// NewConfigScaffoldService creates a new ConfigScaffoldService with injected dependencies.
func NewConfigScaffoldService(tree secondary.SourceTree, writer secondary.ArtifactWriter, log logger.Logger, discovery DiscoverySettings) *ConfigScaffoldServiceImpl {
	return &ConfigScaffoldServiceImpl{
		tree:      tree,
		writer:    writer,
		log:       log,
		discovery: discovery,
	}
}

var configArtifacts = map[primary.ConfigKind]scaffold.ArtifactKind{
	primary.ConfigSecurity: scaffold.KindSecurityConfig,
	primary.ConfigClient:   scaffold.KindClientConfig,
}

// GenerateConfig writes one fixed configuration unit under the root namespace.
func (s *ConfigScaffoldServiceImpl) GenerateConfig(ctx context.Context, req primary.GenerateConfigRequest) (*primary.GenerateConfigResponse, error) {
	if req.SourceRoot == "" {
		return nil, fmt.Errorf("%w: source root", scaffold.ErrMissingArgument)
	}
	kind, ok := configArtifacts[req.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown config kind %q", req.Kind)
	}

	log := scopedLogger(ctx, s.log)
	scan, err := newSourceScan(ctx, s.tree, log, s.discovery, req.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source tree: %w", err)
	}
	rootNS, ok := scan.root(ctx)
	if !ok {
		return nil, scaffold.NewNamespaceError("base", req.SourceRoot)
	}

	file, err := scaffold.NewGenerator(req.SourceRoot).GenerateConfig(kind, rootNS)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", kind, err)
	}
	if err := s.writer.WriteArtifact(ctx, file.Path, []byte(file.Content)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", file.Path, err)
	}

	log.Info("generated config artifact", map[string]interface{}{
		"kind":      string(kind),
		"namespace": rootNS,
		"path":      file.Path,
	})
	return &primary.GenerateConfigResponse{Namespace: rootNS, Path: file.Path}, nil
}

var _ primary.ConfigScaffoldService = (*ConfigScaffoldServiceImpl)(nil)
