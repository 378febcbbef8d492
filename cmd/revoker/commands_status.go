package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDoctorCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print configuration and environment diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			return runDoctor(ctx, state, cmd.OutOrStdout())
		},
	}
}

func runDoctor(ctx context.Context, state *appState, w io.Writer) error {
	cfg := state.cfg
	fmt.Fprintf(w, "config_path=%s\n", state.cfgPath)
	fmt.Fprintf(w, "config_found=%t\n", state.cfgFound)
	fmt.Fprintf(w, "token_types_enabled=%s\n", strings.Join(enabledTypeIDs(state), ","))
	fmt.Fprintf(w, "hcb_base_url=%s\n", state.env.HCBURL)
	fmt.Fprintf(w, "theseus_base_url=%s\n", state.env.TheseusURL)
	fmt.Fprintf(w, "airtable_base_url=%s\n", state.env.AirtableURL)
	fmt.Fprintf(w, "slack_api_url=%s\n", state.env.SlackAPIURL)
	fmt.Fprintf(w, "slack_workspace_url=%s\n", state.env.SlackWorkspaceURL)
	fmt.Fprintf(w, "slack_bot_token=%t\n", state.env.SlackBotToken != "")
	fmt.Fprintf(w, "http_timeout=%s\n", cfg.HTTP.Timeout())
	_, mode := state.openGuard(ctx, false)
	fmt.Fprintf(w, "guard=%s\n", mode)
	fmt.Fprintf(w, "guard_batch=%s\n", batchGuardMode(mode))
	fmt.Fprintf(w, "guard_ttl=%s\n", cfg.Guard.TTL())
	fmt.Fprintf(w, "sentry=%t\n", cfg.Reporting.SentryDSN != "")
	fmt.Fprintf(w, "output_format=%s\n", cfg.Output.Format)
	fmt.Fprintf(w, "debug=%t\n", cfg.Debug.Enabled)
	fmt.Fprintf(w, "stdin_tty=%t\n", stdinIsTerminal())
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 0, 0
	}
	fmt.Fprintf(w, "term=%s size=%dx%d\n", os.Getenv("TERM"), cols, rows)
	return nil
}

func enabledTypeIDs(state *appState) []string {
	if state.registry.Len() == 0 {
		return []string{"none"}
	}
	var out []string
	for _, info := range state.registry.List() {
		out = append(out, string(info.ID))
	}
	return out
}
