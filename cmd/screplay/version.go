package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cliVersion is the screplay CLI's own version, independent of the replay
// format version the decoder recognizes.
const cliVersion = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the screplay version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "screplay %s (replay format %s)\n", cliVersion, "seRS")
			return nil
		},
	}
}
