package commands

import (
	"fmt"

	"wordacy/internal/version"

	"github.com/spf13/cobra"
)

// VersionCommand returns the build information command
func VersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
