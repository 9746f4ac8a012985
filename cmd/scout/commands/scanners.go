package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScannersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scanners",
		Short: "List the available scanner backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range c.app.ScannerNames() {
				_, _ = fmt.Fprintln(out, name)
			}
		},
	}
}
