package tokentype

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

// ErrMissingCookie is returned in the outcome when an xoxc token arrives
// without its xoxd cookie. It matches ErrMissingAux.
var ErrMissingCookie error = missingAuxError("xoxc tokens require the matching xoxd cookie. Please provide both tokens together.")

type missingAuxError string

func (e missingAuxError) Error() string { return string(e) }

func (e missingAuxError) Is(target error) bool { return target == ErrMissingAux }

// slackXoxc revokes scraped browser session tokens through the workspace's
// own session endpoints. The token is only honored alongside its `d` cookie.
type slackXoxc struct {
	Base
	env Env
}

// NewSlackXoxc returns the scraped Slack client token family.
func NewSlackXoxc(env Env) Descriptor {
	return slackXoxc{
		Base: NewBase(Info{
			ID:   types.TypeSlackXoxc,
			Name: "scraped Slack client token",
			Hint: "xoxc-...",
		}, `^xoxc-\d+-\d+-\d+-[a-fA-F0-9]{64}$`, redact.SlackClient),
		env: env,
	}
}

type slackOwner struct {
	email string
	id    string
}

func (s slackXoxc) Revoke(ctx context.Context, token string, aux Aux) Outcome {
	cookie := aux.Get(types.AuxSlackCookie)
	if cookie == "" {
		return Outcome{Error: ErrMissingCookie.Error(), Err: ErrMissingCookie}
	}
	log := s.env.logger().With("token_type", s.Info().ID, "token", s.Redact(token))
	header := http.Header{}
	header.Set("Cookie", "d="+url.QueryEscape(cookie))
	header.Set("Accept", "*/*")

	owner := s.userBoot(ctx, token, header)
	if ctx.Err() != nil {
		return Failed("%v", ctx.Err())
	}

	revoked := s.signout(ctx, token, header)
	if !revoked && ctx.Err() == nil {
		revoked = s.authRevoke(ctx, token, header)
	}

	switch {
	case revoked:
		log.Debug("session revoked", "owner_resolved", owner.email != "")
		return Outcome{Success: true, OwnerEmail: owner.email, OwnerSlackID: owner.id}
	case owner.email != "":
		log.Warn("session not revoked; owner resolved, manual follow-up required")
		return Outcome{
			Success:      true,
			Status:       types.StatusActionNeeded,
			OwnerEmail:   owner.email,
			OwnerSlackID: owner.id,
		}
	default:
		return Failed("auth.enterpriseSignout and auth.revoke both failed")
	}
}

func (s slackXoxc) endpoint(method string) string {
	return s.env.SlackWorkspaceURL + "/api/" + method
}

// userBoot resolves the session owner. Every failure only degrades the result.
func (s slackXoxc) userBoot(ctx context.Context, token string, header http.Header) slackOwner {
	form := url.Values{"token": {token}, "_x_sonic": {"true"}}
	resp, err := s.env.postForm(ctx, s.endpoint("client.userBoot"), form, header)
	if err != nil {
		s.env.logger().Warn("client.userBoot failed", "token_type", s.Info().ID, "err", err)
		return slackOwner{}
	}
	if resp.status != http.StatusOK || !gjson.ValidBytes(resp.body) {
		return slackOwner{}
	}
	doc := gjson.ParseBytes(resp.body)
	email := doc.Get("self.profile.email")
	if !truthy(doc.Get("ok")) || !truthy(email) {
		return slackOwner{}
	}
	return slackOwner{email: email.String(), id: doc.Get("self.id").String()}
}

func (s slackXoxc) signout(ctx context.Context, token string, header http.Header) bool {
	form := url.Values{"token": {token}, "_x_sonic": {"true"}, "_x_app_name": {"client"}}
	resp, err := s.env.postForm(ctx, s.endpoint("auth.enterpriseSignout"), form, header)
	if err != nil {
		s.env.fail(s.Info().ID, "auth.enterpriseSignout", err)
		return false
	}
	return acknowledged(resp, true, "ok")
}

func (s slackXoxc) authRevoke(ctx context.Context, token string, header http.Header) bool {
	form := url.Values{"token": {token}}
	resp, err := s.env.postForm(ctx, s.endpoint("auth.revoke"), form, header)
	if err != nil {
		s.env.fail(s.Info().ID, "auth.revoke", err)
		return false
	}
	return acknowledged(resp, false, "ok", "revoked")
}

// acknowledged interprets a session endpoint reply. JSON bodies must carry a
// truthy value under one of keys; other bodies are matched as plain text.
func acknowledged(resp response, emptyOK bool, keys ...string) bool {
	if resp.status != http.StatusOK {
		return false
	}
	body := strings.TrimSpace(string(resp.body))
	if strings.HasPrefix(body, "{") && gjson.Valid(body) {
		doc := gjson.Parse(body)
		for _, k := range keys {
			if truthy(doc.Get(k)) {
				return true
			}
		}
		return false
	}
	if body == "" {
		return emptyOK
	}
	for _, k := range keys {
		if strings.Contains(body, k) {
			return true
		}
	}
	return false
}

// truthy reports whether r holds a usable value.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	default:
		return r.Exists()
	}
}
