package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/svcscaffold/internal/scaffold"
)

// requireArgs checks that exactly the named positional arguments were given.
// A missing argument is reported with the command's usage line.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("%w: %s\nUsage: %s",
				scaffold.ErrMissingArgument, strings.Join(names[len(args):], ", "), cmd.UseLine())
		}
		if len(args) > len(names) {
			return fmt.Errorf("accepts %d arg(s), received %d\nUsage: %s", len(names), len(args), cmd.UseLine())
		}
		for i, arg := range args {
			if strings.TrimSpace(arg) == "" {
				return fmt.Errorf("%w: %s is empty\nUsage: %s", scaffold.ErrMissingArgument, names[i], cmd.UseLine())
			}
		}
		return nil
	}
}
