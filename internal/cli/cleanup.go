package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/wire"
)

// CleanupModelsCmd returns the cleanup-models command
func CleanupModelsCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "cleanup-models <models-dir>",
		Short: "Rewrite generated model classes into compact annotated form",
		Long: `Rewrite every .java file directly inside <models-dir> (no recursion) into a
class with Lombok annotations and one @JsonProperty field per private field.
Serialized names from existing @JsonProperty annotations are kept.

Each rewritten file is backed up to <file>.bak first. An existing backup is
never replaced, so it always holds the original generated file.

Examples:
  svcscaffold cleanup-models src/main/java/org/egov/web/models
  svcscaffold cleanup-models src/main/java/org/egov/web/models --dry-run`,
		Args: requireArgs("models-dir"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CleanupAdapterWithOutput(cmd.OutOrStdout()).Cleanup(NewContext(), args[0], dryRun)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")

	return cmd
}
