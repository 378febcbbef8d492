package config

import (
	"os"
	"strings"
)

// Environment variables that override file configuration. Deployments inject
// provider URLs and the privileged Slack token this way rather than on disk.
const (
	EnvHCBAPIURL      = "HCB_API_URL"
	EnvTheseusAPIURL  = "THESEUS_API_URL"
	EnvAirtableAPIURL = "AIRTABLE_API_URL"
	EnvSlackWorkspace = "SLACK_WORKSPACE_DOMAIN"
	EnvSlackBotToken  = "SLACK_BOT_TOKEN"
	EnvSentryDSN      = "SENTRY_DSN"
	EnvRedisAddr      = "REVOKER_REDIS_ADDR"
)

// ApplyEnv overlays non-empty environment values onto cfg.
func ApplyEnv(cfg *Config) {
	ApplyEnvFrom(cfg, os.Getenv)
}

// ApplyEnvFrom is ApplyEnv with an injectable lookup.
func ApplyEnvFrom(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.Providers.HCB.BaseURL, EnvHCBAPIURL)
	set(&cfg.Providers.Theseus.BaseURL, EnvTheseusAPIURL)
	set(&cfg.Providers.Airtable.BaseURL, EnvAirtableAPIURL)
	set(&cfg.Providers.Slack.WorkspaceDomain, EnvSlackWorkspace)
	set(&cfg.Providers.Slack.BotToken, EnvSlackBotToken)
	set(&cfg.Reporting.SentryDSN, EnvSentryDSN)
	set(&cfg.Guard.RedisAddr, EnvRedisAddr)
}
