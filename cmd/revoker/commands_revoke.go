package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/ansi"
	"github.com/suryansh-23/revoker/internal/dispatch"
	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
	"github.com/suryansh-23/revoker/internal/ui"
)

const envSlackCookie = "REVOKER_XOXD"

func newRevokeCmd(state *appState) *cobra.Command {
	var (
		in     tokenInput
		cookie string
		yes    bool
		batch  bool
	)
	cmd := &cobra.Command{
		Use:   "revoke [token|-]",
		Short: "Revoke a leaked token at the service that issued it",
		Long: `Revoke a leaked token at the service that issued it.

The token is classified against every supported type and each matching
revoker is tried in order until one succeeds. Prefer the interactive prompt,
stdin or --from-clipboard over passing the token as an argument, which can
end up in shell history.

With --batch, stdin is read one token per line. A line may carry an xoxd
cookie after its xoxc token, separated by whitespace. Tokens revoked earlier
in the batch are not sent to the provider again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cookie == "" {
				cookie = strings.TrimSpace(os.Getenv(envSlackCookie))
			}
			if batch {
				if len(args) > 0 || in.fromClipboard {
					fmt.Fprintln(os.Stderr, "revoker: --batch reads tokens from stdin only")
					return exitWith(exitInputError)
				}
				if !yes {
					fmt.Fprintln(os.Stderr, "revoker: --batch requires --yes")
					return exitWith(exitInputError)
				}
				return revokeBatch(cmd, state, cmd.InOrStdin(), cookie)
			}
			token, err := in.read(ctx, args)
			if err != nil {
				return err
			}
			if token == "" {
				return printPayload(cmd, state, dispatch.Response(dispatch.Result{}, dispatch.ErrEmptyToken), exitInputError)
			}

			matches := state.registry.Classify(token)
			aux := tokentype.Aux{}
			if cookie == "" && hasType(matches, types.TypeSlackXoxc) && in.interactive() {
				if cookie, err = promptSecret("xoxd cookie", "Client tokens only work together with their `d` cookie."); err != nil {
					return err
				}
			}
			if cookie != "" {
				aux[types.AuxSlackCookie] = cookie
			}

			if len(matches) > 0 && !yes {
				if !in.interactive() {
					fmt.Fprintln(os.Stderr, "revoker: refusing to revoke without --yes when stdin is not a terminal")
					return exitWith(exitInputError)
				}
				ok, err := confirm(fmt.Sprintf("Revoke %s %s?", matches[0].Info().Name, matches[0].Redact(token)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(os.Stderr, "revoker: cancelled")
					return nil
				}
			}

			res, derr := runDispatch(ctx, state, token, aux, state.cfg.Output.Format != types.FormatJSON && stderrIsTerminal())
			if derr != nil && len(res.Attempts) > 0 && !errors.Is(derr, dispatch.ErrMissingCompanion) {
				fmt.Fprintf(os.Stderr, "revoker: interrupted after contacting %s; the token may already be revoked\n", joinIDs(res.Attempts))
			}
			return printPayload(cmd, state, dispatch.Response(res, derr), exitCodeFor(res, derr))
		},
	}
	in.bind(cmd.Flags())
	cmd.Flags().StringVar(&cookie, "xoxd", "", "xoxd cookie paired with an xoxc token (or set "+envSlackCookie+")")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&batch, "batch", false, "revoke one token per stdin line")
	return cmd
}

// runDispatch runs the dispatcher, showing a spinner when attached to a
// terminal. Aborting the spinner cancels the dispatch.
func runDispatch(ctx context.Context, state *appState, token string, aux tokentype.Aux, spin bool) (dispatch.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	d := state.newDispatcher(ctx, false)
	if !spin {
		return d.Dispatch(ctx, token, aux)
	}

	var (
		res  dispatch.Result
		derr error
		done = make(chan struct{})
	)
	go func() {
		defer close(done)
		res, derr = d.Dispatch(ctx, token, aux)
	}()
	err := spinner.New().Title("Revoking…").Action(func() { <-done }).Run()
	if err != nil {
		cancel()
	}
	<-done
	return res, derr
}

// revokeBatch dispatches every non-blank line of r through one dispatcher so
// the guard can skip tokens already revoked in this run. The exit code is the
// first non-zero code of any line.
func revokeBatch(cmd *cobra.Command, state *appState, r io.Reader, cookie string) error {
	ctx := cmd.Context()
	d := state.newDispatcher(ctx, true)
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	code := exitOK
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxStdinToken)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(ansi.Strip(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		aux := tokentype.Aux{}
		if len(fields) > 1 {
			aux[types.AuxSlackCookie] = fields[1]
		} else if cookie != "" {
			aux[types.AuxSlackCookie] = cookie
		}

		res, derr := d.Dispatch(ctx, fields[0], aux)
		p := dispatch.Response(res, derr)
		if state.cfg.Output.Format == types.FormatJSON {
			if err := enc.Encode(p); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%d: %s\n", line, ui.StatusLine(p))
		}
		if c := exitCodeFor(res, derr); code == exitOK {
			code = c
		}
		if ctx.Err() != nil {
			if len(res.Attempts) > 0 {
				fmt.Fprintf(os.Stderr, "revoker: interrupted at line %d after contacting %s; the token may already be revoked\n", line, joinIDs(res.Attempts))
			}
			return exitWith(exitFailure)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return exitWith(code)
}

func printPayload(cmd *cobra.Command, state *appState, p dispatch.Payload, code int) error {
	out := cmd.OutOrStdout()
	if state.cfg.Output.Format == types.FormatJSON {
		if err := printJSON(out, p); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, ui.Summary(p))
	}
	return exitWith(code)
}

func hasType(descs []tokentype.Descriptor, id types.TypeID) bool {
	for _, d := range descs {
		if d.Info().ID == id {
			return true
		}
	}
	return false
}

func joinIDs(ids []types.TypeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
