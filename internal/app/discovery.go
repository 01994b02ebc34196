package app

import (
	"context"

	"github.com/example/svcscaffold/internal/core/namespace"
	"github.com/example/svcscaffold/internal/ctxutil"
	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/secondary"
)

// DiscoverySettings controls how namespaces are found in a source tree.
type DiscoverySettings struct {
	Extension string   // source file extension, ".java"
	Boundary  string   // root namespace ends before this segment
	Markers   []string // class names that identify the model namespace
	Output    []string // segments generated artifacts live under
}

// sourceScan lists a tree once and serves both namespace scans from it.
type sourceScan struct {
	tree    secondary.SourceTree
	log     logger.Logger
	locator *namespace.Locator
	files   []string
}

func newSourceScan(ctx context.Context, tree secondary.SourceTree, log logger.Logger, settings DiscoverySettings, root string) (*sourceScan, error) {
	files, err := tree.ListSourceFiles(ctx, root, settings.Extension)
	if err != nil {
		return nil, err
	}
	log.Debug("scanned source tree", map[string]interface{}{
		"root":  root,
		"files": len(files),
	})
	return &sourceScan{
		tree:    tree,
		log:     log,
		locator: namespace.NewLocator(settings.Boundary, settings.Markers, namespace.WithOutputSegments(settings.Output...)),
		files:   files,
	}, nil
}

func (s *sourceScan) reader(ctx context.Context) namespace.ReadFunc {
	return func(path string) ([]byte, error) {
		content, err := s.tree.ReadFile(ctx, path)
		if err != nil {
			s.log.Debug("skipping unreadable source file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		return content, err
	}
}

func (s *sourceScan) root(ctx context.Context) (string, bool) {
	return s.locator.Root(s.files, s.reader(ctx))
}

func (s *sourceScan) model(ctx context.Context) (string, bool) {
	return s.locator.Model(s.files, s.reader(ctx))
}

// scopedLogger tags entries with the invocation's run ID when ctx carries one.
func scopedLogger(ctx context.Context, log logger.Logger) logger.Logger {
	if id := ctxutil.RunIDFromContext(ctx); id != "" {
		return log.With(map[string]interface{}{"run_id": id})
	}
	return log
}
