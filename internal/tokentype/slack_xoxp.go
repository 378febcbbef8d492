package tokentype

import (
	"context"
	"errors"

	"github.com/slack-go/slack"

	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

// slackXoxp revokes user OAuth tokens through the Slack Web API.
type slackXoxp struct {
	Base
	env Env
}

// NewSlackXoxp returns the Slack user OAuth token family.
func NewSlackXoxp(env Env) Descriptor {
	return slackXoxp{
		Base: NewBase(Info{
			ID:   types.TypeSlackXoxp,
			Name: "Slack bot user OAuth token",
			Hint: "xoxp-...",
		}, `^xoxp-[a-zA-Z0-9]+-[a-zA-Z0-9]+-[a-zA-Z0-9]+-[a-zA-Z0-9]+$`, redact.SlackUser),
		env: env,
	}
}

// SlackClient returns a Web API client bound to token and the configured API URL.
func (e Env) SlackClient(token string) *slack.Client {
	opts := []slack.Option{slack.OptionHTTPClient(e.client())}
	if e.SlackAPIURL != "" {
		opts = append(opts, slack.OptionAPIURL(e.SlackAPIURL))
	}
	return slack.New(token, opts...)
}

func (s slackXoxp) Revoke(ctx context.Context, token string, _ Aux) Outcome {
	id := s.Info().ID
	log := s.env.logger().With("token_type", id, "token", s.Redact(token))
	client := s.env.SlackClient(token)

	identity, err := client.AuthTestContext(ctx)
	if err != nil {
		return s.apiFailure("auth.test", err)
	}
	owner := identity.User
	if s.env.SlackBotToken != "" {
		user, err := s.env.SlackClient(s.env.SlackBotToken).GetUserInfoContext(ctx, identity.UserID)
		switch {
		case err != nil:
			log.Warn("users.info failed; falling back to username", "err", err)
		case user.Profile.Email != "":
			owner = user.Profile.Email
		}
	}

	revoked, err := client.SendAuthRevokeContext(ctx, token)
	if err != nil {
		return s.apiFailure("auth.revoke", err)
	}
	if !revoked.Ok {
		return Failed("auth.revoke: provider did not confirm")
	}
	log.Debug("revoked", "slack_user", identity.UserID)
	return Outcome{Success: true, OwnerEmail: owner, OwnerSlackID: identity.UserID}
}

// apiFailure treats Slack API refusals (invalid_auth, token_revoked) as
// ordinary outcomes and reports everything else.
func (s slackXoxp) apiFailure(stage string, err error) Outcome {
	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) {
		s.env.logger().Debug("slack refused", "token_type", s.Info().ID, "stage", stage, "err", apiErr.Err)
		return Failed("%s: %s", stage, apiErr.Err)
	}
	return s.env.fail(s.Info().ID, stage, err)
}
