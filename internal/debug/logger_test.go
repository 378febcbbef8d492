package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored", "k", "v")
	if l.With("a", 1) != nil {
		t.Fatalf("With on nil logger should stay nil")
	}
}

func TestDebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, false)
	l.Debug("hidden")
	l.Info("shown", "type", "hcb_oauth")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "type=hcb_oauth") {
		t.Fatalf("missing attr: %q", out)
	}

	buf.Reset()
	NewWriter(&buf, true).With("component", "dispatch").Debug("visible")
	if !strings.Contains(buf.String(), "component=dispatch") {
		t.Fatalf("verbose output = %q", buf.String())
	}
}
