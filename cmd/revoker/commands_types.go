package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/types"
	"github.com/suryansh-23/revoker/internal/ui"
)

func newTypesCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported token types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := state.registry.List()
			if state.cfg.Output.Format == types.FormatJSON {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.TypeTable(infos))
			return nil
		},
	}
}
