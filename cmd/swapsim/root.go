package swapsim

import (
	"github.com/spf13/cobra"
)

func BuildSwapSimCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "swapsim",
		Short: "Simulate settlement swaps for price quoting",
		Long:  ``,
	}

	cmd.AddCommand(buildSimulateCmd())

	return &cmd
}
