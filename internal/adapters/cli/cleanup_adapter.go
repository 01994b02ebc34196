package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// CleanupAdapter translates CLI operations to CleanupService calls.
type CleanupAdapter struct {
	service primary.CleanupService
	out     io.Writer
}

// NewCleanupAdapter creates a new CleanupAdapter with the given service.
func NewCleanupAdapter(service primary.CleanupService, out io.Writer) *CleanupAdapter {
	return &CleanupAdapter{
		service: service,
		out:     out,
	}
}

// Cleanup rewrites model files in dir and prints one line per file plus a
// summary. An empty directory is reported, not returned as an error.
func (a *CleanupAdapter) Cleanup(ctx context.Context, dir string, dryRun bool) (*primary.CleanupModelsResponse, error) {
	resp, err := a.service.CleanupModels(ctx, primary.CleanupModelsRequest{Dir: dir, DryRun: dryRun})
	if errors.Is(err, scaffold.ErrNoQualifyingFiles) {
		fmt.Fprintf(a.out, "No .java files found in %s\n", dir)
		return &primary.CleanupModelsResponse{Dir: dir, DryRun: dryRun}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clean up models: %w", err)
	}

	for _, r := range resp.Results {
		fmt.Fprintln(a.out, formatResult(r))
	}

	processed, skipped := resp.Processed(), resp.Skipped()
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Processed: %d\n", len(processed))
	for _, name := range processed {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}
	fmt.Fprintf(a.out, "Skipped: %d\n", len(skipped))
	for _, name := range skipped {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}

	return resp, nil
}

func formatResult(r primary.ModelResult) string {
	switch r.Outcome {
	case primary.OutcomeRewritten:
		backup := filepath.Base(r.BackupPath)
		if !r.BackupCreated {
			backup += " (kept)"
		}
		return fmt.Sprintf("%s   %s -> simplified (%d fields). backup at %s",
			color.New(color.FgGreen).Sprint("[ok]"), r.File, r.FieldCount, backup)
	case primary.OutcomeWouldRewrite:
		return fmt.Sprintf("%s  %s -> would simplify (%d fields)",
			color.New(color.FgCyan).Sprint("[dry]"), r.File, r.FieldCount)
	case primary.OutcomeSkippedNoClass:
		return fmt.Sprintf("%s %s: could not detect class name",
			color.New(color.FgYellow).Sprint("[skip]"), r.File)
	case primary.OutcomeSkippedNoFields:
		return fmt.Sprintf("%s %s: no private fields found - leaving alone",
			color.New(color.FgYellow).Sprint("[skip]"), r.File)
	default:
		return fmt.Sprintf("%s %s: %v",
			color.New(color.FgRed).Sprint("[error]"), r.File, r.Err)
	}
}
