package tokentype

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestSlackDirectoryLookup(t *testing.T) {
	var gotToken, gotEmail string
	srv := newFakeProvider(t, map[string]http.HandlerFunc{
		"/api/users.lookupByEmail": func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseForm()
			gotToken = slackToken(r)
			gotEmail = r.Form.Get("email")
			writeJSON(w, http.StatusOK, `{"ok":true,"user":{"id":"U777","name":"gail"}}`)
		},
	})
	env := testEnv(srv.URL, nil)
	env.SlackBotToken = sampleBot

	id, err := NewSlackDirectory(env).SlackIDByEmail(context.Background(), "gail@example.com")
	if err != nil {
		t.Fatalf("SlackIDByEmail: %v", err)
	}
	if id != "U777" {
		t.Fatalf("id = %q", id)
	}
	if gotToken != sampleBot || gotEmail != "gail@example.com" {
		t.Fatalf("unexpected request token=%q email=%q", gotToken, gotEmail)
	}
}

func TestSlackDirectoryRequiresBotToken(t *testing.T) {
	srv := newFakeProvider(t, nil)
	_, err := NewSlackDirectory(testEnv(srv.URL, nil)).SlackIDByEmail(context.Background(), "x@example.com")
	if !errors.Is(err, ErrNoBotToken) {
		t.Fatalf("expected ErrNoBotToken, got %v", err)
	}
	if srv.total() != 0 {
		t.Fatalf("expected no network calls")
	}
}
