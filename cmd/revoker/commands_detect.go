package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

type detectReport struct {
	RedactedToken string           `json:"redacted_token,omitempty"`
	Matches       []tokentype.Info `json:"matches"`
}

func newDetectCmd(state *appState) *cobra.Command {
	var in tokenInput
	cmd := &cobra.Command{
		Use:   "detect [token|-]",
		Short: "Show which token types a value matches without contacting any service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := in.read(cmd.Context(), args)
			if err != nil {
				return err
			}
			if token == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "revoker:", errNoToken)
				return exitWith(exitInputError)
			}
			matches := state.registry.Classify(token)
			rep := detectReport{Matches: make([]tokentype.Info, 0, len(matches))}
			for _, d := range matches {
				rep.Matches = append(rep.Matches, d.Info())
			}
			if len(matches) > 0 {
				rep.RedactedToken = matches[0].Redact(token)
			}

			out := cmd.OutOrStdout()
			if state.cfg.Output.Format == types.FormatJSON {
				if err := printJSON(out, rep); err != nil {
					return err
				}
			} else if len(matches) == 0 {
				fmt.Fprintln(out, "revoker: Token doesn't match any supported type")
			} else {
				fmt.Fprintln(out, rep.RedactedToken)
				for _, info := range rep.Matches {
					fmt.Fprintf(out, "  %-24s %s\n", info.ID, info.Name)
				}
			}
			if len(matches) == 0 {
				return exitWith(exitUnrecognized)
			}
			return nil
		},
	}
	in.bind(cmd.Flags())
	return cmd
}
