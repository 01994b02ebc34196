package app

import (
	"context"
	"fmt"

	"github.com/example/svcscaffold/internal/core/finder"
	"github.com/example/svcscaffold/internal/core/identity"
	"github.com/example/svcscaffold/internal/core/schema"
	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// Skip reasons reported for entities that produce no repository.
const (
	ReasonNotPersistent = "not classified as persistent"
	ReasonNoKey         = "no identifier field resolved"
	ReasonWriteFailed   = "write failed"
)

// RepositoryServiceImpl implements the RepositoryService interface.
type RepositoryServiceImpl struct {
	tree           secondary.SourceTree
	loader         secondary.SchemaLoader
	writer         secondary.ArtifactWriter
	log            logger.Logger
	discovery      DiscoverySettings
	collectionPath []string
}

// NewRepositoryService creates a new RepositoryService with injected dependencies.
func NewRepositoryService(
	tree secondary.SourceTree,
	loader secondary.SchemaLoader,
	writer secondary.ArtifactWriter,
	log logger.Logger,
	discovery DiscoverySettings,
	collectionPath string,
) *RepositoryServiceImpl {
	return &RepositoryServiceImpl{
		tree:           tree,
		loader:         loader,
		writer:         writer,
		log:            log,
		discovery:      discovery,
		collectionPath: schema.ParseCollectionPath(collectionPath),
	}
}

// GenerateRepositories runs the repository pipeline. Namespace discovery
// failures abort the run; per-entity problems are recorded and skipped.
func (s *RepositoryServiceImpl) GenerateRepositories(ctx context.Context, req primary.GenerateRepositoriesRequest) (*primary.GenerateRepositoriesResponse, error) {
	if req.SchemaPath == "" {
		return nil, fmt.Errorf("%w: schema document path", scaffold.ErrMissingArgument)
	}
	if req.SourceRoot == "" {
		return nil, fmt.Errorf("%w: source root", scaffold.ErrMissingArgument)
	}

	log := scopedLogger(ctx, s.log)

	doc, err := s.loader.Load(ctx, req.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema document: %w", err)
	}

	scan, err := newSourceScan(ctx, s.tree, log, s.discovery, req.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source tree: %w", err)
	}
	rootNS, ok := scan.root(ctx)
	if !ok {
		return nil, scaffold.NewNamespaceError("base", req.SourceRoot)
	}
	modelNS, ok := scan.model(ctx)
	if !ok {
		return nil, scaffold.NewNamespaceError("model", req.SourceRoot)
	}

	resp := &primary.GenerateRepositoriesResponse{
		RootNamespace:  rootNS,
		ModelNamespace: modelNS,
	}

	catalog := schema.NewCatalog(doc, s.collectionPath)
	resolver := identity.NewResolver(identity.WithOverride(req.HonorIDOverride))
	synth := finder.NewSynthesizer(resolver.Rules())
	gen := scaffold.NewGenerator(req.SourceRoot)

	log.Info("generating repositories", map[string]interface{}{
		"schema":          req.SchemaPath,
		"entities":        catalog.Len(),
		"root_namespace":  rootNS,
		"model_namespace": modelNS,
	})

	for _, entity := range catalog.Entities() {
		if !resolver.Classify(entity) {
			log.Debug("skipping entity", map[string]interface{}{
				"entity": entity.Name,
				"reason": ReasonNotPersistent,
			})
			resp.Skipped = append(resp.Skipped, primary.SkippedEntity{Entity: entity.Name, Reason: ReasonNotPersistent})
			continue
		}

		key, ok := resolver.ResolveKey(entity)
		if !ok {
			log.WithError(scaffold.NewEntityError(entity.Name, scaffold.ErrNoIdentifierField)).
				Warn("skipping entity", map[string]interface{}{"entity": entity.Name})
			resp.Skipped = append(resp.Skipped, primary.SkippedEntity{Entity: entity.Name, Reason: ReasonNoKey})
			continue
		}

		methods := synth.Synthesize(entity)
		collisions := finder.Collisions(methods)
		for _, name := range collisions {
			log.Warn("finder method name emitted more than once", map[string]interface{}{
				"entity": entity.Name,
				"method": name,
			})
		}

		file, err := gen.GenerateRepository(scaffold.RepositorySpec{
			RootNamespace:  rootNS,
			ModelNamespace: modelNS,
			Entity:         entity.Name,
			IDType:         key.Field.OutputType(),
			Methods:        finder.Render(methods),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render repository for %s: %w", entity.Name, err)
		}

		if err := s.writer.WriteArtifact(ctx, file.Path, []byte(file.Content)); err != nil {
			log.WithError(err).Error("failed to write repository", map[string]interface{}{
				"entity": entity.Name,
				"path":   file.Path,
			})
			resp.Skipped = append(resp.Skipped, primary.SkippedEntity{
				Entity: entity.Name,
				Reason: fmt.Sprintf("%s: %v", ReasonWriteFailed, err),
			})
			continue
		}

		names := make([]string, len(methods))
		for i, m := range methods {
			names[i] = m.Name
		}
		resp.Generated = append(resp.Generated, primary.GeneratedRepository{
			Entity:     entity.Name,
			Path:       file.Path,
			KeyField:   key.Field.Name,
			KeyType:    key.Field.OutputType(),
			KeyRule:    key.Rule,
			Methods:    names,
			Collisions: collisions,
		})
	}

	return resp, nil
}

var _ primary.RepositoryService = (*RepositoryServiceImpl)(nil)
