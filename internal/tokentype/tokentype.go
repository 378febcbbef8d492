// Package tokentype defines the token families the revoker understands. Each
// family is a Descriptor: a full-string pattern plus the revoke and redact
// behavior for that provider.
package tokentype

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

// ErrNotImplemented marks a descriptor that was registered without revoke
// behavior. It is a programming error, never a provider outcome.
var ErrNotImplemented = errors.New("revoke not implemented")

// ErrMissingAux marks an attempt that could not start because a companion
// secret was absent. It is an input problem, not a provider answer.
var ErrMissingAux = errors.New("companion secret missing")

// Info is the display metadata of a token family.
type Info struct {
	ID   types.TypeID `json:"id"`
	Name string       `json:"name"`
	Hint string       `json:"hint"`
}

// Aux carries companion secrets some families need, keyed by name
// (types.AuxSlackCookie for xoxc tokens).
type Aux map[string]string

// Get returns the trimmed value for key.
func (a Aux) Get(key string) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a[key])
}

// Outcome is the result of one revoke attempt.
//
// Status is meaningful only when Success is set. Error is for operator
// diagnostics and must not be shown to whoever reported the token. Err is set
// only for failures the caller can fix, such as ErrMissingAux.
type Outcome struct {
	Success      bool
	Status       types.Status
	OwnerEmail   string
	OwnerSlackID string
	KeyName      string
	Error        string
	Err          error
}

// Failed returns an unsuccessful outcome with a diagnostic message.
func Failed(format string, args ...any) Outcome {
	return Outcome{Error: fmt.Sprintf(format, args...)}
}

// Descriptor is the capability set of one token family.
type Descriptor interface {
	Info() Info
	// Matches reports whether candidate is, in full, a token of this family.
	Matches(candidate string) bool
	// Revoke invalidates candidate at the provider. Expected failures are
	// reported through the Outcome, never by panicking.
	Revoke(ctx context.Context, candidate string, aux Aux) Outcome
	// Redact returns a display-safe form of candidate.
	Redact(candidate string) string
}

// Base holds the immutable per-family configuration shared by every variant.
// Variants embed it and supply Revoke.
type Base struct {
	info    Info
	pattern *regexp.Regexp
	redact  redact.Func
}

// NewBase compiles pattern, anchoring it to the full string. A nil redactor
// selects redact.Default.
func NewBase(info Info, pattern string, fn redact.Func) Base {
	if fn == nil {
		fn = redact.Default
	}
	return Base{
		info:    info,
		pattern: regexp.MustCompile(anchor(pattern)),
		redact:  fn,
	}
}

func anchor(pattern string) string {
	p := strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")
	return `^(?:` + p + `)$`
}

func (b Base) Info() Info { return b.info }

func (b Base) Matches(candidate string) bool {
	return b.pattern != nil && b.pattern.MatchString(candidate)
}

func (b Base) Redact(candidate string) string { return b.redact(candidate) }

// Revoke fails for variants that forgot to implement it.
func (b Base) Revoke(context.Context, string, Aux) Outcome {
	return Failed("%s: %v", b.info.ID, ErrNotImplemented)
}
