package tokentype

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/suryansh-23/revoker/internal/redact"
	"github.com/suryansh-23/revoker/internal/types"
)

const airtableWhoamiPath = "/v0/meta/whoami"

// airtablePAT cannot be revoked through a public API. A live token is
// confirmed and attributed so the owner can delete it by hand.
type airtablePAT struct {
	Base
	env Env
}

// NewAirtablePAT returns the Airtable personal access token family.
func NewAirtablePAT(env Env) Descriptor {
	return airtablePAT{
		Base: NewBase(Info{
			ID:   types.TypeAirtablePAT,
			Name: "Airtable Personal Access Token",
			Hint: "pat...",
		}, `^pat[a-zA-Z0-9]{5,}\.[0-9a-fA-F]{10,}$`, redact.DotHash),
		env: env,
	}
}

func (a airtablePAT) Revoke(ctx context.Context, token string, _ Aux) Outcome {
	id := a.Info().ID
	resp, err := a.env.bearer(ctx, http.MethodGet, a.env.AirtableURL+airtableWhoamiPath, token, nil)
	if err != nil {
		return a.env.fail(id, "whoami", err)
	}
	if !resp.ok() {
		a.env.logger().Debug("whoami rejected token", "token_type", id, "status", resp.status)
		return Failed("whoami: status %d", resp.status)
	}
	doc := gjson.ParseBytes(resp.body)
	a.env.logger().Warn("airtable token is live; owner must delete it manually", "token_type", id, "token", a.Redact(token))
	return Outcome{
		Success:    true,
		Status:     types.StatusActionNeeded,
		OwnerEmail: doc.Get("email").String(),
		KeyName:    doc.Get("id").String(),
	}
}
