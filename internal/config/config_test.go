package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/suryansh-23/revoker/internal/types"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseCanonicalConfig(t *testing.T) {
	path := filepath.Join("testdata", "canonical.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read canonical config: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse canonical config: %v", err)
	}

	if cfg.Version != DefaultConfigVersion {
		t.Fatalf("version = %d, want %d", cfg.Version, DefaultConfigVersion)
	}
	if cfg.HTTP.Timeout() != 20*time.Second {
		t.Fatalf("timeout = %s", cfg.HTTP.Timeout())
	}
	if cfg.Guard.TTL() != 15*time.Minute {
		t.Fatalf("guard ttl = %s", cfg.Guard.TTL())
	}
	if cfg.Guard.MaxEntries != 128 {
		t.Fatalf("max_entries = %d", cfg.Guard.MaxEntries)
	}
	if cfg.Output.Format != types.FormatJSON {
		t.Fatalf("format = %q", cfg.Output.Format)
	}
	if cfg.TypeEnabled("airtable_pat") {
		t.Fatalf("airtable_pat should be disabled")
	}
	if !cfg.TypeEnabled("hcb_oauth") {
		t.Fatalf("unlisted types should stay enabled")
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("parse minimal config: %v", err)
	}
	if cfg.HTTP.UserAgent != defaultUserAgent {
		t.Fatalf("user_agent = %q", cfg.HTTP.UserAgent)
	}
	if cfg.Providers.Slack.APIURL != "https://slack.com/api/" {
		t.Fatalf("slack api_url = %q", cfg.Providers.Slack.APIURL)
	}
	if !cfg.Guard.Enabled {
		t.Fatalf("guard should default to enabled")
	}
}

func TestValidationAggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 2
	cfg.HTTP.TimeoutSeconds = 0
	cfg.Providers.HCB.BaseURL = "not a url"
	cfg.Providers.Slack.APIURL = "https://slack.com/api"
	cfg.Output.Format = "yaml"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []string{
		"version must be 1",
		"http.timeout_seconds",
		"providers.hcb.base_url must be an absolute URL",
		"providers.slack.api_url must end with /",
		"output.format",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestValidationRejectsDuplicateTokenTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenTypes = []TokenType{{ID: "slack_xoxc"}, {ID: "slack_xoxc", Enabled: true}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for duplicated token type")
	}
	cfg.TokenTypes = []TokenType{{ID: " "}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for empty token type id")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("found = true for missing file")
	}
	if cfg.Providers.HCB.BaseURL != DefaultConfig().Providers.HCB.BaseURL {
		t.Fatalf("hcb base_url = %q", cfg.Providers.HCB.BaseURL)
	}
}

func TestWorkspaceURL(t *testing.T) {
	cases := map[string]string{
		"hackclub.enterprise.slack.com": "https://hackclub.enterprise.slack.com",
		"http://127.0.0.1:8080/":        "http://127.0.0.1:8080",
		"  team.slack.com ":             "https://team.slack.com",
		"":                              "",
	}
	for in, want := range cases {
		got := Slack{WorkspaceDomain: in}.WorkspaceURL()
		if got != want {
			t.Fatalf("WorkspaceURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyEnvFrom(t *testing.T) {
	cfg := DefaultConfig()
	env := map[string]string{
		EnvHCBAPIURL:      "http://localhost:3000",
		EnvSlackBotToken:  "xoxb-test",
		EnvSlackWorkspace: "",
	}
	ApplyEnvFrom(&cfg, func(k string) string { return env[k] })
	if cfg.Providers.HCB.BaseURL != "http://localhost:3000" {
		t.Fatalf("hcb base_url = %q", cfg.Providers.HCB.BaseURL)
	}
	if cfg.Providers.Slack.BotToken != "xoxb-test" {
		t.Fatalf("bot_token = %q", cfg.Providers.Slack.BotToken)
	}
	if cfg.Providers.Slack.WorkspaceDomain != "hackclub.enterprise.slack.com" {
		t.Fatalf("empty env should not override workspace_domain")
	}
}
