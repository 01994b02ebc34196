package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/svcscaffold/internal/ports/primary"
)

// RepositoryAdapter is a thin adapter that translates CLI operations to RepositoryService calls.
type RepositoryAdapter struct {
	service primary.RepositoryService
	out     io.Writer
}

// NewRepositoryAdapter creates a new RepositoryAdapter with the given service.
func NewRepositoryAdapter(service primary.RepositoryService, out io.Writer) *RepositoryAdapter {
	return &RepositoryAdapter{
		service: service,
		out:     out,
	}
}

// Generate renders one repository per persistent entity and prints a report.
func (a *RepositoryAdapter) Generate(ctx context.Context, schemaPath, sourceRoot string, honorOverride bool) (*primary.GenerateRepositoriesResponse, error) {
	resp, err := a.service.GenerateRepositories(ctx, primary.GenerateRepositoriesRequest{
		SchemaPath:      schemaPath,
		SourceRoot:      sourceRoot,
		HonorIDOverride: honorOverride,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate repositories: %w", err)
	}

	fmt.Fprintf(a.out, "Base package:  %s\n", resp.RootNamespace)
	fmt.Fprintf(a.out, "Model package: %s\n", resp.ModelNamespace)
	fmt.Fprintln(a.out)

	if len(resp.Generated) == 0 {
		fmt.Fprintln(a.out, "No persistent entities found.")
	}

	check := color.New(color.FgGreen).Sprint("✓")
	for _, g := range resp.Generated {
		fmt.Fprintf(a.out, "%s Generated %s\n", check, g.Path)
	}

	if len(resp.Generated) > 0 {
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ENTITY\tKEY\tTYPE\tRULE\tFINDERS")
		fmt.Fprintln(w, "------\t---\t----\t----\t-------")
		for _, g := range resp.Generated {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", g.Entity, g.KeyField, g.KeyType, g.KeyRule, len(g.Methods))
		}
		w.Flush()
	}

	warn := color.New(color.FgYellow).Sprint("!")
	for _, g := range resp.Generated {
		if len(g.Collisions) > 0 {
			fmt.Fprintf(a.out, "%s %s: duplicate finder names %s\n", warn, g.Entity, strings.Join(g.Collisions, ", "))
		}
	}

	if len(resp.Skipped) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Skipped: %d\n", len(resp.Skipped))
		for _, s := range resp.Skipped {
			fmt.Fprintf(a.out, "  - %s (%s)\n", s.Entity, s.Reason)
		}
	}

	return resp, nil
}
