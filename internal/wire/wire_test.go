package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/svcscaffold/internal/config"
	"github.com/example/svcscaffold/internal/logger"
)

func TestServices_AreSingletons(t *testing.T) {
	Configure(config.Default(), logger.NewTestLogger(t))

	assert.Same(t, RepositoryService(), RepositoryService())
	assert.Same(t, CleanupService(), CleanupService())
	assert.Same(t, ConfigScaffoldService(), ConfigScaffoldService())
}

func TestConfigure_RebuildsServices(t *testing.T) {
	first := logger.NewTestLogger(t)
	Configure(config.Default(), first)
	repo := RepositoryService()
	cleanup := CleanupService()
	cfgScaffold := ConfigScaffoldService()

	second := logger.NewTestLogger(t).With(map[string]interface{}{"command": "client-config"})
	Configure(nil, second)

	assert.Same(t, second, Logger())
	assert.NotSame(t, repo, RepositoryService())
	assert.NotSame(t, cleanup, CleanupService())
	assert.NotSame(t, cfgScaffold, ConfigScaffoldService())
}
