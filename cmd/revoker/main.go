package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInputError   = 2
	exitUnrecognized = 3
	exitInvalid      = 4
	exitActionNeeded = 5
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	state := &appState{}
	rootCmd := newRootCmd(state)
	err := rootCmd.ExecuteContext(ctx)
	state.close()
	stop()
	if err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
