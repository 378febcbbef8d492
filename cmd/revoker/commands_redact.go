package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/detect"
	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

func newRedactCmd(state *appState) *cobra.Command {
	var (
		in     tokenInput
		typeID string
	)
	cmd := &cobra.Command{
		Use:   "redact [token|-]",
		Short: "Print the display-safe form of a token",
		Long: `Print the display-safe form of a token.

The first matching type's redaction is used, or --type to pick one. Tokens
that match no type get the generic first-7/last-3 redaction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := in.read(cmd.Context(), args)
			if err != nil {
				return err
			}
			if token == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "revoker:", errNoToken)
				return exitWith(exitInputError)
			}

			var id types.TypeID
			redacted := redact.Default(token)
			if typeID = strings.TrimSpace(typeID); typeID != "" {
				d, ok := state.registry.Lookup(types.TypeID(typeID))
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "revoker: %v: %s\n", detect.ErrUnknownTokenType, typeID)
					return exitWith(exitInputError)
				}
				id, redacted = d.Info().ID, d.Redact(token)
			} else if matches := state.registry.Classify(token); len(matches) > 0 {
				id, redacted = matches[0].Info().ID, matches[0].Redact(token)
			}

			out := cmd.OutOrStdout()
			if state.cfg.Output.Format == types.FormatJSON {
				payload := map[string]string{"redacted_token": redacted}
				if id != "" {
					payload["token_type"] = string(id)
				}
				return printJSON(out, payload)
			}
			fmt.Fprintln(out, redacted)
			return nil
		},
	}
	in.bind(cmd.Flags())
	cmd.Flags().StringVar(&typeID, "type", "", "redact as this token type id even if it does not match")
	return cmd
}
