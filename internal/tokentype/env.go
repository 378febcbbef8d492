package tokentype

import (
	"net/http"
	"strings"

	"github.com/suryansh-23/revoker/internal/config"
	"github.com/suryansh-23/revoker/internal/debug"
	"github.com/suryansh-23/revoker/internal/report"
)

// Env is the configuration every revoker reads instead of hardcoding
// endpoints or credentials.
type Env struct {
	HTTPClient *http.Client
	UserAgent  string

	HCBURL            string
	TheseusURL        string
	AirtableURL       string
	SlackAPIURL       string
	SlackWorkspaceURL string
	// SlackBotToken is the privileged token used for owner lookups. Optional.
	SlackBotToken string

	Logger   *debug.Logger
	Reporter report.Reporter
}

// NewEnv builds an Env from a validated config.
func NewEnv(cfg config.Config, logger *debug.Logger, reporter report.Reporter) Env {
	return Env{
		HTTPClient:        &http.Client{Timeout: cfg.HTTP.Timeout()},
		UserAgent:         cfg.HTTP.UserAgent,
		HCBURL:            trimBase(cfg.Providers.HCB.BaseURL),
		TheseusURL:        trimBase(cfg.Providers.Theseus.BaseURL),
		AirtableURL:       trimBase(cfg.Providers.Airtable.BaseURL),
		SlackAPIURL:       cfg.Providers.Slack.APIURL,
		SlackWorkspaceURL: trimBase(cfg.Providers.Slack.WorkspaceURL()),
		SlackBotToken:     strings.TrimSpace(cfg.Providers.Slack.BotToken),
		Logger:            logger,
		Reporter:          reporter,
	}
}

func trimBase(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func (e Env) client() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

func (e Env) logger() *debug.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return debug.Discard()
}

func (e Env) reporter() report.Reporter {
	if e.Reporter != nil {
		return e.Reporter
	}
	return report.Nop{}
}

func (e Env) userAgent() string {
	if e.UserAgent != "" {
		return e.UserAgent
	}
	return "revoker/1.0"
}
