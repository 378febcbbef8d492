package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/suryansh-23/revoker/internal/dispatch"
	"github.com/suryansh-23/revoker/internal/types"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitCodeFor maps a dispatch outcome to the process exit code.
func exitCodeFor(res dispatch.Result, err error) int {
	switch {
	case errors.Is(err, dispatch.ErrEmptyToken), errors.Is(err, dispatch.ErrMissingCompanion):
		return exitInputError
	case err != nil:
		return exitFailure
	}
	switch res.Kind {
	case dispatch.KindUnrecognized:
		return exitUnrecognized
	case dispatch.KindInvalid:
		return exitInvalid
	case dispatch.KindRevoked:
		if res.Outcome.Status == types.StatusActionNeeded {
			return exitActionNeeded
		}
		return exitOK
	default:
		return exitFailure
	}
}

func exitWith(code int) error {
	if code == exitOK {
		return nil
	}
	return &exitCodeError{code: code}
}
