// Package wire provides dependency injection for the svcscaffold application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/svcscaffold/internal/adapters/cli"
	"github.com/example/svcscaffold/internal/adapters/filesystem"
	"github.com/example/svcscaffold/internal/adapters/openapi"
	"github.com/example/svcscaffold/internal/app"
	"github.com/example/svcscaffold/internal/config"
	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/scaffold"
)

var (
	cfg = config.Default()
	log = logger.NewNoOpLogger()

	repositoryService     primary.RepositoryService
	cleanupService        primary.CleanupService
	configScaffoldService primary.ConfigScaffoldService
	once                  sync.Once
)

// Configure sets the configuration and logger. Services are rebuilt on the
// next lookup so they pick up both.
func Configure(c *config.Config, l logger.Logger) {
	if c != nil {
		cfg = c
	}
	if l != nil {
		log = l
	}
	once = sync.Once{}
}

// Config returns the active configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the configured logger.
func Logger() logger.Logger {
	return log
}

// RepositoryService returns the singleton RepositoryService instance.
func RepositoryService() primary.RepositoryService {
	once.Do(initServices)
	return repositoryService
}

// CleanupService returns the singleton CleanupService instance.
func CleanupService() primary.CleanupService {
	once.Do(initServices)
	return cleanupService
}

// ConfigScaffoldService returns the singleton ConfigScaffoldService instance.
func ConfigScaffoldService() primary.ConfigScaffoldService {
	once.Do(initServices)
	return configScaffoldService
}

// initServices initializes all services and their dependencies.
// This is called once per Configure via sync.Once.
func initServices() {
	workspace := filesystem.NewWorkspaceAdapter()
	loader := openapi.NewLoader()

	discovery := app.DiscoverySettings{
		Extension: cfg.Source.Extension,
		Boundary:  cfg.Source.BoundarySegment,
		Markers:   cfg.Source.MarkerEntities,
		Output:    scaffold.OutputSegments(),
	}

	repositoryService = app.NewRepositoryService(workspace, loader, workspace, log, discovery, cfg.Schema.CollectionPath)
	cleanupService = app.NewCleanupService(workspace, log, cfg.Source.Extension, cfg.Cleanup.BackupSuffix)
	configScaffoldService = app.NewConfigScaffoldService(workspace, workspace, log, discovery)
}

// RepositoryAdapter returns a new RepositoryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func RepositoryAdapter() *cliadapter.RepositoryAdapter {
	return RepositoryAdapterWithOutput(os.Stdout)
}

// RepositoryAdapterWithOutput returns a new RepositoryAdapter with custom output.
func RepositoryAdapterWithOutput(out io.Writer) *cliadapter.RepositoryAdapter {
	return cliadapter.NewRepositoryAdapter(RepositoryService(), out)
}

// CleanupAdapter returns a new CleanupAdapter writing to stdout.
func CleanupAdapter() *cliadapter.CleanupAdapter {
	return CleanupAdapterWithOutput(os.Stdout)
}

// CleanupAdapterWithOutput returns a new CleanupAdapter with custom output.
func CleanupAdapterWithOutput(out io.Writer) *cliadapter.CleanupAdapter {
	return cliadapter.NewCleanupAdapter(CleanupService(), out)
}

// ConfigAdapter returns a new ConfigAdapter writing to stdout.
func ConfigAdapter() *cliadapter.ConfigAdapter {
	return ConfigAdapterWithOutput(os.Stdout)
}

// ConfigAdapterWithOutput returns a new ConfigAdapter with custom output.
func ConfigAdapterWithOutput(out io.Writer) *cliadapter.ConfigAdapter {
	return cliadapter.NewConfigAdapter(ConfigScaffoldService(), out)
}
