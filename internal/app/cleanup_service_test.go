package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/scaffold"
)

const verboseModel = `package org.egov.web.models;

import java.util.Objects;

public class Complaint {
  private String serviceRequestId;

  private String tenantId;

  @JsonProperty("tenant_id")
  public String getTenantId() {
    return tenantId;
  }
}
`

const noClassModel = "package org.egov.web.models;\n\npublic enum Status { OPEN }\n"

const noFieldsModel = "package org.egov.web.models;\n\npublic class Empty {\n}\n"

func newTestCleanupService(t *testing.T, store *mockModelStore) *CleanupServiceImpl {
	t.Helper()
	return NewCleanupService(store, logger.NewTestLogger(t), ".java", ".bak")
}

func modelStore() *mockModelStore {
	store := newMockModelStore()
	store.files["/models/Complaint.java"] = verboseModel
	store.files["/models/Empty.java"] = noFieldsModel
	store.files["/models/Status.java"] = noClassModel
	return store
}

func TestCleanupModels_RewritesAndClassifies(t *testing.T) {
	store := modelStore()
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	complaint := resp.Results[0]
	assert.Equal(t, "Complaint.java", complaint.File)
	assert.Equal(t, primary.OutcomeRewritten, complaint.Outcome)
	assert.Equal(t, "Complaint", complaint.Entity)
	assert.Equal(t, 2, complaint.FieldCount)
	assert.Equal(t, "/models/Complaint.java.bak", complaint.BackupPath)
	assert.True(t, complaint.BackupCreated)
	assert.NoError(t, complaint.Err)

	assert.Equal(t, primary.OutcomeSkippedNoFields, resp.Results[1].Outcome)
	assert.Equal(t, primary.OutcomeSkippedNoClass, resp.Results[2].Outcome)

	assert.Equal(t, verboseModel, store.backups["/models/Complaint.java.bak"], "backup holds the original bytes")
	assert.Contains(t, store.files["/models/Complaint.java"], "    @JsonProperty(\"tenant_id\")\n    private String tenantId;")
	assert.Equal(t, noFieldsModel, store.files["/models/Empty.java"], "skipped files are untouched")
	assert.Equal(t, 1, store.writes)

	assert.Equal(t, []string{"Complaint.java"}, resp.Processed())
	assert.Equal(t, []string{"Empty.java", "Status.java"}, resp.Skipped())
}

func TestCleanupModels_SecondRunKeepsFirstBackup(t *testing.T) {
	store := modelStore()
	service := newTestCleanupService(t, store)

	_, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)
	firstPass := store.files["/models/Complaint.java"]

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].BackupCreated)
	assert.Equal(t, verboseModel, store.backups["/models/Complaint.java.bak"])
	assert.Equal(t, firstPass, store.files["/models/Complaint.java"], "rewriting canonical output is a no-op")
}

func TestCleanupModels_DryRunWritesNothing(t *testing.T) {
	store := modelStore()
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models", DryRun: true})
	require.NoError(t, err)

	assert.True(t, resp.DryRun)
	assert.Equal(t, primary.OutcomeWouldRewrite, resp.Results[0].Outcome)
	assert.Equal(t, 0, store.writes)
	assert.Empty(t, store.backups)
	assert.Equal(t, verboseModel, store.files["/models/Complaint.java"])
}

func TestCleanupModels_PerFileErrorsDoNotStopBatch(t *testing.T) {
	store := modelStore()
	store.files["/models/Another.java"] = verboseModel
	store.readErrs["/models/Another.java"] = errors.New("permission denied")
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 4)

	failed := resp.Results[0]
	assert.Equal(t, "Another.java", failed.File)
	assert.Equal(t, primary.OutcomeError, failed.Outcome)
	assert.ErrorIs(t, failed.Err, scaffold.ErrFileProcessing)

	assert.Equal(t, primary.OutcomeRewritten, resp.Results[1].Outcome, "later files are still processed")
	assert.Contains(t, resp.Skipped(), "Another.java")
}

func TestCleanupModels_RecoversFromPanic(t *testing.T) {
	store := modelStore()
	store.panicPath = "/models/Complaint.java"
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, primary.OutcomeError, resp.Results[0].Outcome)
	var fileErr *scaffold.FileError
	require.ErrorAs(t, resp.Results[0].Err, &fileErr)
	assert.Equal(t, "process", fileErr.Op)
	assert.Contains(t, fileErr.Error(), "corrupt read buffer")
	assert.Equal(t, primary.OutcomeSkippedNoFields, resp.Results[1].Outcome)
}

func TestCleanupModels_BackupFailureLeavesFileUntouched(t *testing.T) {
	store := modelStore()
	store.backupErr = errors.New("disk full")
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)

	assert.Equal(t, primary.OutcomeError, resp.Results[0].Outcome)
	var fileErr *scaffold.FileError
	require.ErrorAs(t, resp.Results[0].Err, &fileErr)
	assert.Equal(t, "backup", fileErr.Op)
	assert.Equal(t, verboseModel, store.files["/models/Complaint.java"])
	assert.Equal(t, 0, store.writes)
}

func TestCleanupModels_WriteFailure(t *testing.T) {
	store := modelStore()
	store.writeErr = errors.New("read-only file system")
	service := newTestCleanupService(t, store)

	resp, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	require.NoError(t, err)

	var fileErr *scaffold.FileError
	require.ErrorAs(t, resp.Results[0].Err, &fileErr)
	assert.Equal(t, "write", fileErr.Op)
	assert.True(t, resp.Results[0].BackupCreated)
}

func TestCleanupModels_NoQualifyingFiles(t *testing.T) {
	service := newTestCleanupService(t, newMockModelStore())

	_, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/models"})
	assert.ErrorIs(t, err, scaffold.ErrNoQualifyingFiles)
}

func TestCleanupModels_MissingDirectory(t *testing.T) {
	store := newMockModelStore()
	store.listErr = scaffold.NewPathError("models directory", "/nope", errors.New("no such file or directory"))
	service := newTestCleanupService(t, store)

	_, err := service.CleanupModels(context.Background(), primary.CleanupModelsRequest{Dir: "/nope"})
	assert.ErrorIs(t, err, scaffold.ErrInputPathNotFound)

	_, err = service.CleanupModels(context.Background(), primary.CleanupModelsRequest{})
	assert.ErrorIs(t, err, scaffold.ErrMissingArgument)
}
