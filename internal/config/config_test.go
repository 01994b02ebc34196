package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultFileInDir(t *testing.T) {
	dir := t.TempDir()
	content := `source:
  boundary_segment: api
  marker_entities: [Complaint]
cleanup:
  backup_suffix: .orig
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0644))

	cfg, err := Load(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Source.BoundarySegment)
	assert.Equal(t, []string{"Complaint"}, cfg.Source.MarkerEntities)
	assert.Equal(t, ".orig", cfg.Cleanup.BackupSuffix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ".java", cfg.Source.Extension, "unset keys keep defaults")
	assert.Equal(t, "components.schemas", cfg.Schema.CollectionPath)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0644))

	_, err := Load("", path, nil)
	assert.Error(t, err)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n  format: json\ngenerate:\n  honor_id_override: false\n"), 0644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	fs.String("log-format", "console", "")
	fs.Bool("honor-id-override", false, "")
	require.NoError(t, fs.Parse([]string{"--log-level=error", "--honor-id-override"}))

	cfg, err := Load("", path, fs)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level, "changed flag wins")
	assert.Equal(t, "json", cfg.Log.Format, "unchanged flag does not mask the file")
	assert.True(t, cfg.Generate.HonorIDOverride)
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  extension: \"\"\n  marker_entities: []\n"), 0644))

	cfg, err := Load("", path, nil)
	require.NoError(t, err)
	assert.Equal(t, ".java", cfg.Source.Extension)
	assert.Equal(t, []string{"AuditDetails", "CitizenService"}, cfg.Source.MarkerEntities)
}
