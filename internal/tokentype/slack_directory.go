package tokentype

import (
	"context"
	"errors"
	"strings"
)

// ErrNoBotToken is returned by SlackDirectory when no privileged token is configured.
var ErrNoBotToken = errors.New("slack bot token not configured")

// SlackDirectory maps owner emails to Slack user ids with the bot token.
type SlackDirectory struct {
	env Env
}

// NewSlackDirectory returns a directory backed by env's Slack settings.
func NewSlackDirectory(env Env) *SlackDirectory {
	return &SlackDirectory{env: env}
}

// SlackIDByEmail resolves email through users.lookupByEmail.
func (s *SlackDirectory) SlackIDByEmail(ctx context.Context, email string) (string, error) {
	if s.env.SlackBotToken == "" {
		return "", ErrNoBotToken
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("email is empty")
	}
	user, err := s.env.SlackClient(s.env.SlackBotToken).GetUserByEmailContext(ctx, email)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
