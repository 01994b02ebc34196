package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/svcscaffold/internal/ports/primary"
)

// ConfigAdapter translates CLI operations to ConfigScaffoldService calls.
type ConfigAdapter struct {
	service primary.ConfigScaffoldService
	out     io.Writer
}

// NewConfigAdapter creates a new ConfigAdapter with the given service.
func NewConfigAdapter(service primary.ConfigScaffoldService, out io.Writer) *ConfigAdapter {
	return &ConfigAdapter{
		service: service,
		out:     out,
	}
}

// Generate writes the requested configuration unit.
func (a *ConfigAdapter) Generate(ctx context.Context, sourceRoot string, kind primary.ConfigKind) (*primary.GenerateConfigResponse, error) {
	resp, err := a.service.GenerateConfig(ctx, primary.GenerateConfigRequest{
		SourceRoot: sourceRoot,
		Kind:       kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s config: %w", kind, err)
	}

	fmt.Fprintf(a.out, "%s Generated %s\n", color.New(color.FgGreen).Sprint("✓"), resp.Path)
	fmt.Fprintf(a.out, "  Package: %s.config\n", resp.Namespace)
	return resp, nil
}
