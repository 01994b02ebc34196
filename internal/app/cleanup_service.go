package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/example/svcscaffold/internal/core/model"
	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// CleanupServiceImpl implements the CleanupService interface.
type CleanupServiceImpl struct {
	store        secondary.ModelStore
	log          logger.Logger
	extension    string
	backupSuffix string
}

// NewCleanupService creates a new CleanupService with injected dependencies.
func NewCleanupService(store secondary.ModelStore, log logger.Logger, extension, backupSuffix string) *CleanupServiceImpl {
	return &CleanupServiceImpl{
		store:        store,
		log:          log,
		extension:    extension,
		backupSuffix: backupSuffix,
	}
}

// CleanupModels rewrites each qualifying file directly inside req.Dir.
func (s *CleanupServiceImpl) CleanupModels(ctx context.Context, req primary.CleanupModelsRequest) (*primary.CleanupModelsResponse, error) {
	if req.Dir == "" {
		return nil, fmt.Errorf("%w: models directory", scaffold.ErrMissingArgument)
	}

	files, err := s.store.ListDirectFiles(ctx, req.Dir, s.extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", scaffold.ErrNoQualifyingFiles, s.extension, req.Dir)
	}

	log := scopedLogger(ctx, s.log)
	resp := &primary.CleanupModelsResponse{Dir: req.Dir, DryRun: req.DryRun}
	for _, path := range files {
		result := s.processFile(ctx, path, req.DryRun)
		logResult(log, result)
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// outcomes maps terminal model states to reported outcomes.
var outcomes = map[model.State]primary.ModelOutcome{
	model.StateSkippedNoClass:  primary.OutcomeSkippedNoClass,
	model.StateSkippedNoFields: primary.OutcomeSkippedNoFields,
	model.StateRewritten:       primary.OutcomeRewritten,
	model.StateError:           primary.OutcomeError,
}

func (s *CleanupServiceImpl) processFile(ctx context.Context, path string, dryRun bool) (result primary.ModelResult) {
	result = primary.ModelResult{
		File: filepath.Base(path),
		Path: path,
	}
	state := model.StateStart
	fail := func(op string, err error) {
		state = model.StateError
		result.Err = scaffold.NewFileError(op, path, err)
	}

	defer func() {
		if r := recover(); r != nil {
			fail("process", fmt.Errorf("%v", r))
		}
		if state.Terminal() {
			result.Outcome = outcomes[state]
		}
	}()

	content, err := s.store.ReadFile(ctx, path)
	if err != nil {
		fail("read", err)
		return result
	}

	out, parsed, state := model.Rewrite(string(content))
	result.Entity = parsed.Entity
	result.FieldCount = len(parsed.Fields)
	if state.Terminal() {
		return result
	}

	if dryRun {
		result.Outcome = primary.OutcomeWouldRewrite
		return result
	}

	result.BackupPath = path + s.backupSuffix
	created, err := s.store.BackupIfAbsent(ctx, path, result.BackupPath)
	if err != nil {
		fail("backup", err)
		return result
	}
	result.BackupCreated = created

	if err := s.store.WriteAtomic(ctx, path, []byte(out)); err != nil {
		fail("write", err)
		return result
	}

	state = model.StateRewritten
	return result
}

func logResult(log logger.Logger, r primary.ModelResult) {
	fields := map[string]interface{}{
		"file":    r.File,
		"outcome": string(r.Outcome),
	}
	switch r.Outcome {
	case primary.OutcomeError:
		log.WithError(r.Err).Error("model cleanup failed", fields)
	case primary.OutcomeRewritten:
		fields["fields"] = r.FieldCount
		fields["backup_created"] = r.BackupCreated
		log.Debug("model rewritten", fields)
	default:
		log.Debug("model cleanup outcome", fields)
	}
}

var _ primary.CleanupService = (*CleanupServiceImpl)(nil)
