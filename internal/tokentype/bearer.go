package tokentype

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

const (
	hcbRevokePath     = "/api/v4/user/revoke"
	theseusRevokePath = "/api/v1/revoke"
)

// bearerRevoker covers internal services that revoke the presented token with
// a single authenticated POST.
type bearerRevoker struct {
	Base
	env  Env
	base func(Env) string
	path string
}

type bearerReply struct {
	Success    bool   `json:"success"`
	OwnerEmail string `json:"owner_email"`
	KeyName    string `json:"key_name"`
}

// NewHCBOAuth returns the HCB v4 API token family.
func NewHCBOAuth(env Env) Descriptor {
	return bearerRevoker{
		Base: NewBase(Info{
			ID:   types.TypeHCBOAuth,
			Name: "HCB V4 API token",
			Hint: "hcb_...",
		}, `^hcb_[a-zA-Z0-9_-]{30,}$`, redact.Default),
		env:  env,
		base: func(e Env) string { return e.HCBURL },
		path: hcbRevokePath,
	}
}

// NewTheseusAPIKey returns the mail service internal key family.
func NewTheseusAPIKey(env Env) Descriptor {
	return bearerRevoker{
		Base: NewBase(Info{
			ID:   types.TypeTheseusAPIKey,
			Name: "mail.hackclub.com internal API key",
			Hint: "th_api_live_...",
		}, `^th_api_(live|dev)_[a-zA-Z0-9]{20,}$`, redact.Underscored),
		env:  env,
		base: func(e Env) string { return e.TheseusURL },
		path: theseusRevokePath,
	}
}

// NewTheseusPublicAPIKey returns the mail service public key family.
func NewTheseusPublicAPIKey(env Env) Descriptor {
	return bearerRevoker{
		Base: NewBase(Info{
			ID:   types.TypeTheseusPublicAPIKey,
			Name: "mail.hackclub.com public API Key",
			Hint: "th_apk_live_...",
		}, `^th_apk_(live|dev)_[a-zA-Z0-9]{20,}$`, redact.Underscored),
		env:  env,
		base: func(e Env) string { return e.TheseusURL },
		path: theseusRevokePath,
	}
}

func (b bearerRevoker) Revoke(ctx context.Context, token string, _ Aux) Outcome {
	id := b.Info().ID
	log := b.env.logger().With("token_type", id, "token", b.Redact(token))

	resp, err := b.env.bearer(ctx, http.MethodPost, b.base(b.env)+b.path, token, strings.NewReader("{}"))
	if err != nil {
		return b.env.fail(id, "revoke", err)
	}
	var reply bearerReply
	if err := json.Unmarshal(resp.body, &reply); err != nil {
		log.Warn("revoke response is not json", "status", resp.status)
		return Failed("revoke: status %d with undecodable body", resp.status)
	}
	if !resp.ok() || !reply.Success {
		log.Debug("revoke declined", "status", resp.status, "success", reply.Success)
		return Failed("revoke: status %d success=%t", resp.status, reply.Success)
	}
	log.Debug("revoked", "status", resp.status)
	return Outcome{
		Success:    true,
		OwnerEmail: reply.OwnerEmail,
		KeyName:    reply.KeyName,
	}
}
