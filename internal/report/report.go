// Package report forwards unexpected revocation failures to an error tracker.
package report

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter receives errors that operators need to see. Implementations must
// not block the revocation path for long.
type Reporter interface {
	Capture(err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// Nop drops every report.
type Nop struct{}

func (Nop) Capture(error, map[string]string) {}
func (Nop) Flush(time.Duration)              {}

// Sentry reports through a dedicated sentry hub.
type Sentry struct {
	hub *sentry.Hub
}

// Options configures NewSentry.
type Options struct {
	DSN         string
	Environment string
	Release     string
	// Transport overrides the sentry transport; tests use it to capture events.
	Transport sentry.Transport
}

// NewSentry returns a Sentry reporter. An empty DSN yields Nop.
func NewSentry(opts Options) (Reporter, error) {
	if opts.DSN == "" {
		return Nop{}, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Release:     opts.Release,
		Transport:   opts.Transport,
		// Request bodies and headers may hold the token being revoked.
		SendDefaultPII: false,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return &Sentry{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (s *Sentry) Capture(err error, tags map[string]string) {
	if s == nil || err == nil {
		return
	}
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		s.hub.CaptureException(err)
	})
}

func (s *Sentry) Flush(timeout time.Duration) {
	if s == nil {
		return
	}
	s.hub.Flush(timeout)
}
