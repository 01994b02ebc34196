package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/ports/primary"
	"github.com/example/svcscaffold/internal/wire"
)

// SecurityConfigCmd returns the security-config command
func SecurityConfigCmd() *cobra.Command {
	return configCmd(
		"security-config",
		"Generate the request security configuration",
		`Write <base package>.config.SecurityConfig, which registers a filter that
decodes the bearer token payload into the request.

Example:
  svcscaffold security-config src/main/java`,
		primary.ConfigSecurity,
	)
}

// ClientConfigCmd returns the client-config command
func ClientConfigCmd() *cobra.Command {
	return configCmd(
		"client-config",
		"Generate the platform client configuration",
		`Write <base package>.config.DigitClientConfig, which imports the platform
client library configuration.

Example:
  svcscaffold client-config src/main/java`,
		primary.ConfigClient,
	)
}

func configCmd(name, short, long string, kind primary.ConfigKind) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <source-root>",
		Short: short,
		Long:  long,
		Args:  requireArgs("source-root"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ConfigAdapterWithOutput(cmd.OutOrStdout()).Generate(NewContext(), args[0], kind)
			return err
		},
	}
}
