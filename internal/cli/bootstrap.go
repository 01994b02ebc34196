// Package cli provides CLI commands for the svcscaffold application.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/config"
	"github.com/example/svcscaffold/internal/ctxutil"
	"github.com/example/svcscaffold/internal/logger"
	"github.com/example/svcscaffold/internal/version"
	"github.com/example/svcscaffold/internal/wire"
)

// runID identifies the current invocation in log output.
var runID string

// addGlobalFlags registers flags shared by every command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "config file (default ./"+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "", "log format: console or json")
}

// Bootstrap loads configuration and installs the logger used by services.
// It runs once per invocation from the root command's PersistentPreRunE.
func Bootstrap(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd, path, cmd.Flags())
	if err != nil {
		return err
	}

	runID = uuid.NewString()
	log := logger.NewStructured(cfg.Log.Level, cfg.Log.Format).With(map[string]interface{}{
		"command": cmd.Name(),
		"commit":  version.ShortCommit(),
	})
	wire.Configure(cfg, log)

	log.Debug("configuration loaded", map[string]interface{}{
		"run_id":           runID,
		"boundary_segment": cfg.Source.BoundarySegment,
		"collection_path":  cfg.Schema.CollectionPath,
		"backup_suffix":    cfg.Cleanup.BackupSuffix,
	})
	return nil
}

// NewContext creates a context.Background() with the current run ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	ctx := context.Background()
	if runID != "" {
		return ctxutil.WithRunID(ctx, runID)
	}
	return ctx
}

func syncLogger() {
	_ = wire.Logger().Sync()
}
