package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/suryansh-23/revoker/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion  = 1
	defaultConfigRelPath  = "revoker/config.yaml"
	defaultUserAgent      = "revoker/1.0"
	defaultTimeoutSeconds = 15
	defaultGuardTTL       = 600
	defaultGuardEntries   = 256
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema.
type Config struct {
	Version int `yaml:"version"`

	HTTP       HTTP        `yaml:"http"`
	Providers  Providers   `yaml:"providers"`
	TokenTypes []TokenType `yaml:"token_types,omitempty"`
	Guard      Guard       `yaml:"guard"`
	Reporting  Reporting   `yaml:"reporting"`
	Output     Output      `yaml:"output"`

	Debug Debug `yaml:"debug"`
}

// Debug controls verbose logging.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// HTTP configures outbound provider calls.
type HTTP struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// Timeout returns the per-request timeout.
func (h HTTP) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// Providers holds base URLs and credentials for upstream APIs.
type Providers struct {
	HCB      Endpoint `yaml:"hcb"`
	Theseus  Endpoint `yaml:"theseus"`
	Airtable Endpoint `yaml:"airtable"`
	Slack    Slack    `yaml:"slack"`
}

// Endpoint is a provider reachable under a single base URL.
type Endpoint struct {
	BaseURL string `yaml:"base_url"`
}

// Slack configures both the Web API client and the workspace session endpoints.
type Slack struct {
	APIURL          string `yaml:"api_url"`
	WorkspaceDomain string `yaml:"workspace_domain"`
	BotToken        string `yaml:"bot_token,omitempty"`
}

// WorkspaceURL returns the workspace base URL. A bare domain is served over https.
func (s Slack) WorkspaceURL() string {
	domain := strings.TrimRight(strings.TrimSpace(s.WorkspaceDomain), "/")
	if domain == "" || strings.Contains(domain, "://") {
		return domain
	}
	return "https://" + domain
}

// TokenType toggles a registered token family by id.
type TokenType struct {
	ID      string `yaml:"id"`
	Enabled bool   `yaml:"enabled"`
}

// Guard configures the already-revoked guard.
type Guard struct {
	Enabled    bool   `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	MaxEntries int    `yaml:"max_entries"`
	RedisAddr  string `yaml:"redis_addr,omitempty"`
}

// TTL returns how long a recorded revocation is remembered.
func (g Guard) TTL() time.Duration {
	return time.Duration(g.TTLSeconds) * time.Second
}

// Reporting configures the error reporting sink.
type Reporting struct {
	SentryDSN   string `yaml:"sentry_dsn,omitempty"`
	Environment string `yaml:"environment,omitempty"`
}

// Output configures CLI rendering.
type Output struct {
	Format types.OutputFormat `yaml:"format"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version: DefaultConfigVersion,
		HTTP: HTTP{
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      defaultUserAgent,
		},
		Providers: Providers{
			HCB:      Endpoint{BaseURL: "https://hcb.hackclub.com"},
			Theseus:  Endpoint{BaseURL: "https://mail.hackclub.com"},
			Airtable: Endpoint{BaseURL: "https://api.airtable.com"},
			Slack: Slack{
				APIURL:          "https://slack.com/api/",
				WorkspaceDomain: "hackclub.enterprise.slack.com",
			},
		},
		Guard: Guard{
			Enabled:    true,
			TTLSeconds: defaultGuardTTL,
			MaxEntries: defaultGuardEntries,
		},
		Output: Output{Format: types.FormatText},
		Debug:  Debug{Enabled: false},
	}
}

// TypeEnabled reports whether a token family is enabled. Families not listed
// in token_types are enabled.
func (c Config) TypeEnabled(id string) bool {
	for _, t := range c.TokenTypes {
		if t.ID == id {
			return t.Enabled
		}
	}
	return true
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing.
// The boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Validate(); err != nil {
				return Config{}, false, err
			}
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		errs = append(errs, "http.timeout_seconds must be > 0")
	}
	if strings.TrimSpace(c.HTTP.UserAgent) == "" {
		errs = append(errs, "http.user_agent is required")
	}
	for _, u := range []struct{ name, raw string }{
		{"providers.hcb.base_url", c.Providers.HCB.BaseURL},
		{"providers.theseus.base_url", c.Providers.Theseus.BaseURL},
		{"providers.airtable.base_url", c.Providers.Airtable.BaseURL},
		{"providers.slack.api_url", c.Providers.Slack.APIURL},
	} {
		if msg := checkURL(u.name, u.raw); msg != "" {
			errs = append(errs, msg)
		}
	}
	if c.Providers.Slack.APIURL != "" && !strings.HasSuffix(c.Providers.Slack.APIURL, "/") {
		errs = append(errs, "providers.slack.api_url must end with /")
	}
	if strings.TrimSpace(c.Providers.Slack.WorkspaceDomain) == "" {
		errs = append(errs, "providers.slack.workspace_domain is required")
	}
	seen := make(map[string]bool)
	for i, t := range c.TokenTypes {
		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, fmt.Sprintf("token_types[%d].id is required", i))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("token_types[%d].id %q is duplicated", i, t.ID))
		}
		seen[t.ID] = true
	}
	if c.Guard.TTLSeconds < 0 {
		errs = append(errs, "guard.ttl_seconds must be >= 0")
	}
	if c.Guard.MaxEntries < 0 {
		errs = append(errs, "guard.max_entries must be >= 0")
	}
	if !validFormat(c.Output.Format) {
		errs = append(errs, "output.format must be text or json")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func checkURL(name, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return name + " is required"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return name + " must be an absolute URL"
	}
	return ""
}

func validFormat(format types.OutputFormat) bool {
	switch format {
	case types.FormatText, types.FormatJSON:
		return true
	default:
		return false
	}
}
