package dispatch

import (
	"errors"

	"github.com/suryansh-23/revoker/internal/types"
)

const (
	msgTokenRequired = "Token is required"
	msgUnrecognized  = "Token doesn't match any supported type"
	msgInvalid       = "Token is invalid or already revoked"
	msgIncomplete    = "Revocation was interrupted"
	msgActionNeeded  = "Manual intervention required to complete revocation"
)

// Payload is what the caller that reported a token gets back. It never
// carries provider diagnostics.
type Payload struct {
	Success       bool         `json:"success"`
	Status        types.Status `json:"status,omitempty"`
	TokenType     string       `json:"token_type,omitempty"`
	RedactedToken string       `json:"redacted_token,omitempty"`
	OwnerEmail    string       `json:"owner_email,omitempty"`
	OwnerSlackID  string       `json:"owner_slack_id,omitempty"`
	KeyName       string       `json:"key_name,omitempty"`
	ActionNeeded  string       `json:"action_needed,omitempty"`
	Replayed      bool         `json:"replayed,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// Response builds the caller payload for the outcome of Dispatch.
func Response(res Result, err error) Payload {
	if errors.Is(err, ErrEmptyToken) {
		return Payload{Error: msgTokenRequired}
	}
	var companion *CompanionError
	if errors.As(err, &companion) {
		return Payload{Error: companion.Err.Error()}
	}
	if err != nil && res.Kind != KindRevoked {
		return Payload{Error: msgIncomplete}
	}
	switch res.Kind {
	case KindUnrecognized:
		return Payload{Error: msgUnrecognized}
	case KindInvalid:
		return Payload{Error: msgInvalid}
	case KindRevoked:
	default:
		return Payload{Error: msgIncomplete}
	}

	p := Payload{
		Success:       true,
		Status:        res.Outcome.Status,
		TokenType:     res.Winner.Name,
		RedactedToken: res.Redacted,
		OwnerEmail:    res.Outcome.OwnerEmail,
		OwnerSlackID:  res.Outcome.OwnerSlackID,
		KeyName:       res.Outcome.KeyName,
		Replayed:      res.Replayed,
	}
	if p.TokenType == "" {
		p.TokenType = string(res.Winner.ID)
	}
	if p.Status == types.StatusActionNeeded {
		p.ActionNeeded = msgActionNeeded
	}
	return p
}
