package report

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
)

// captureTransport records events in memory. The embedded interface covers
// transport methods the tests never reach.
type captureTransport struct {
	sentry.Transport

	mu     sync.Mutex
	events []*sentry.Event
}

func (t *captureTransport) Configure(sentry.ClientOptions) {}

func (t *captureTransport) SendEvent(e *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

func (t *captureTransport) Flush(time.Duration) bool { return true }

func TestNewSentryWithoutDSNIsNop(t *testing.T) {
	r, err := NewSentry(Options{})
	if err != nil {
		t.Fatalf("NewSentry: %v", err)
	}
	if _, ok := r.(Nop); !ok {
		t.Fatalf("reporter = %T, want Nop", r)
	}
	r.Capture(errors.New("ignored"), nil)
}

func TestSentryCaptureTagsEvent(t *testing.T) {
	tr := &captureTransport{}
	r, err := NewSentry(Options{DSN: "https://public@sentry.example.com/1", Transport: tr})
	if err != nil {
		t.Fatalf("NewSentry: %v", err)
	}
	r.Capture(errors.New("provider exploded"), map[string]string{"token_type": "hcb_oauth"})
	r.Flush(time.Second)

	tr.mu.Lock()
	defer tr.mu.Unlock()
	if len(tr.events) != 1 {
		t.Fatalf("events = %d, want 1", len(tr.events))
	}
	if got := tr.events[0].Tags["token_type"]; got != "hcb_oauth" {
		t.Fatalf("token_type tag = %q", got)
	}
}
