package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/version"
)

// RootCmd returns the svcscaffold command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     version.Name,
		Short:   "Scaffold persistence code for generated service skeletons",
		Version: version.String(),
		Long: `svcscaffold fills in what an OpenAPI code generator leaves out of a
generated Java service skeleton: a data-access repository per persistent
entity, compact model classes, and fixed security and client configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Bootstrap(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			syncLogger()
		},
	}
	addGlobalFlags(cmd)

	cmd.AddCommand(RepositoriesCmd())
	cmd.AddCommand(CleanupModelsCmd())
	cmd.AddCommand(SecurityConfigCmd())
	cmd.AddCommand(ClientConfigCmd())

	return cmd
}
