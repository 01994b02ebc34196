package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/wire"
)

// RepositoriesCmd returns the repositories command
func RepositoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repositories <schema-file> <source-root>",
		Short: "Generate a repository interface per persistent schema entity",
		Long: `Read an OpenAPI document and write one JPA repository interface for every
schema entity that has an identifier-shaped field.

The base package is the first package statement found in the source tree,
cut before its "web" segment; the model package is the package of the first
file declaring AuditDetails or CitizenService. Repositories are written to
<source-root>/<base package>/repository/.

Examples:
  svcscaffold repositories api.yaml src/main/java
  svcscaffold repositories api.yaml src/main/java --honor-id-override`,
		Args: requireArgs("schema-file", "source-root"),
		RunE: func(cmd *cobra.Command, args []string) error {
			honor := wire.Config().Generate.HonorIDOverride
			_, err := wire.RepositoryAdapterWithOutput(cmd.OutOrStdout()).Generate(NewContext(), args[0], args[1], honor)
			return err
		},
	}

	cmd.Flags().Bool("honor-id-override", false, "use an entity's x-id-field extension as its key when present")

	return cmd
}
