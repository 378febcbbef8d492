package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/suryansh-23/revoker/internal/ansi"
	"github.com/suryansh-23/revoker/internal/clipboard"
	"github.com/suryansh-23/revoker/internal/ui"
)

const maxStdinToken = 64 << 10

var errNoToken = errors.New("no token given; pass it as an argument, pipe it on stdin or use --from-clipboard")

// tokenInput collects a token from args, stdin, the clipboard or a prompt.
type tokenInput struct {
	fromClipboard  bool
	clearClipboard bool
	backend        string

	stdin     io.Reader
	stdinTerm func() bool
}

func (in *tokenInput) bind(flags *pflag.FlagSet) {
	flags.BoolVar(&in.fromClipboard, "from-clipboard", false, "read the token from the clipboard")
	flags.BoolVar(&in.clearClipboard, "clear-clipboard", false, "empty the clipboard after reading the token")
	flags.StringVar(&in.backend, "clipboard-backend", "auto", "clipboard backend (auto, pasteboard, wayland, xclip, xsel)")
}

func (in *tokenInput) interactive() bool {
	if in.stdinTerm != nil {
		return in.stdinTerm()
	}
	return stdinIsTerminal()
}

// read returns the token with escape sequences and surrounding space removed.
func (in *tokenInput) read(ctx context.Context, args []string) (string, error) {
	raw, err := in.readRaw(ctx, args)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(ansi.Strip(raw)), nil
}

func (in *tokenInput) readRaw(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	if in.fromClipboard {
		token, err := clipboard.ReadToken(ctx, in.backend)
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		if in.clearClipboard {
			if err := clipboard.Clear(ctx, in.backend); err != nil {
				fmt.Fprintf(os.Stderr, "revoker: could not clear clipboard: %v\n", err)
			}
		}
		return token, nil
	}
	if (len(args) > 0 && args[0] == "-") || !in.interactive() {
		data, err := io.ReadAll(io.LimitReader(in.stdinReader(), maxStdinToken))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return promptSecret("Token to revoke", "Input is hidden and never logged.")
}

func (in *tokenInput) stdinReader() io.Reader {
	if in.stdin != nil {
		return in.stdin
	}
	return os.Stdin
}

func promptSecret(title, description string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Description(description).
			EchoMode(huh.EchoModePassword).
			Value(&value),
	)).WithTheme(ui.Theme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func confirm(title string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(huh.NewConfirm().Title(title).Value(&ok))).WithTheme(ui.Theme())
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func stdinIsTerminal() bool  { return term.IsTerminal(int(os.Stdin.Fd())) }
func stderrIsTerminal() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
