// Package guard remembers tokens that were already revoked so a repeated
// report is answered from the record instead of hitting providers again.
// Entries are keyed by fingerprint; plaintext tokens are never stored.
package guard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/suryansh-23/revoker/internal/types"
)

// Entry is a recorded successful revocation.
type Entry struct {
	TokenType    types.TypeID `json:"token_type"`
	TokenName    string       `json:"token_name"`
	Status       types.Status `json:"status"`
	Redacted     string       `json:"redacted_token"`
	OwnerEmail   string       `json:"owner_email,omitempty"`
	OwnerSlackID string       `json:"owner_slack_id,omitempty"`
	KeyName      string       `json:"key_name,omitempty"`
	RevokedAt    time.Time    `json:"revoked_at"`
}

// Store persists entries by fingerprint.
type Store interface {
	// Get returns the entry for fp. A miss is (Entry{}, false, nil).
	Get(ctx context.Context, fp string) (Entry, bool, error)
	Put(ctx context.Context, fp string, e Entry) error
}

// Fingerprint returns the hex SHA-256 of the trimmed candidate.
func Fingerprint(candidate string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(candidate)))
	return hex.EncodeToString(sum[:])
}
