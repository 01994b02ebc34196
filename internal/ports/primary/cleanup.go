package primary

import "context"

// CleanupService defines the primary port for model file cleanup.
type CleanupService interface {
	// CleanupModels rewrites every qualifying model file directly inside a
	// directory into its compact form. One file's failure never aborts the batch.
	CleanupModels(ctx context.Context, req CleanupModelsRequest) (*CleanupModelsResponse, error)
}

// CleanupModelsRequest contains parameters for a cleanup run.
type CleanupModelsRequest struct {
	Dir    string
	DryRun bool // Parse and report only
}

// ModelOutcome is the terminal state of one file.
type ModelOutcome string

const (
	OutcomeRewritten       ModelOutcome = "rewritten"
	OutcomeWouldRewrite    ModelOutcome = "would-rewrite"
	OutcomeSkippedNoClass  ModelOutcome = "skipped-no-class"
	OutcomeSkippedNoFields ModelOutcome = "skipped-no-fields"
	OutcomeError           ModelOutcome = "error"
)

// Processed reports whether the outcome counts as processed in a summary.
func (o ModelOutcome) Processed() bool {
	return o == OutcomeRewritten || o == OutcomeWouldRewrite
}

// ModelResult is the outcome for one file.
type ModelResult struct {
	File          string // Base name
	Path          string
	Outcome       ModelOutcome
	Entity        string
	FieldCount    int
	BackupPath    string
	BackupCreated bool
	Err           error
}

// CleanupModelsResponse contains per-file results in processing order.
type CleanupModelsResponse struct {
	Dir     string
	DryRun  bool
	Results []ModelResult
}

// Processed returns the names of files that were (or would be) rewritten.
func (r *CleanupModelsResponse) Processed() []string {
	var names []string
	for _, res := range r.Results {
		if res.Outcome.Processed() {
			names = append(names, res.File)
		}
	}
	return names
}

// Skipped returns the names of files left untouched, including failures.
func (r *CleanupModelsResponse) Skipped() []string {
	var names []string
	for _, res := range r.Results {
		if !res.Outcome.Processed() {
			names = append(names, res.File)
		}
	}
	return names
}
