// Package dispatch turns a reported candidate into at most one successful
// revocation: classify, then try each matching family in order until one
// succeeds.
package dispatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/suryansh-23/revoker/internal/debug"
	"github.com/suryansh-23/revoker/internal/guard"
	"github.com/suryansh-23/revoker/internal/report"
	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

// ErrEmptyToken is returned for blank input. It is an input error, not a Result.
var ErrEmptyToken = errors.New("token is required")

// ErrMissingCompanion is matched by the error Dispatch returns when no family
// succeeded and at least one could not run for lack of a companion secret.
var ErrMissingCompanion = errors.New("companion secret is required")

// CompanionError names the family that needed a companion secret. Err is the
// revoker's message for whoever reported the token.
type CompanionError struct {
	TokenType types.TypeID
	Err       error
}

func (e *CompanionError) Error() string { return e.Err.Error() }

func (e *CompanionError) Unwrap() []error { return []error{ErrMissingCompanion, e.Err} }

// Kind classifies how a dispatch ended.
type Kind int

const (
	// KindIncomplete is left on a Result when the dispatch was cancelled.
	KindIncomplete Kind = iota
	KindUnrecognized
	KindInvalid
	KindRevoked
)

func (k Kind) String() string {
	switch k {
	case KindUnrecognized:
		return "unrecognized"
	case KindInvalid:
		return "invalid"
	case KindRevoked:
		return "revoked"
	default:
		return "incomplete"
	}
}

// Result describes one dispatch.
type Result struct {
	Kind Kind
	// Matched lists every family the candidate classified as.
	Matched []types.TypeID
	// Attempts lists the families whose revoker actually ran.
	Attempts []types.TypeID
	// Winner is the family that revoked the token.
	Winner   tokentype.Info
	Outcome  tokentype.Outcome
	Redacted string
	// Replayed is set when the result came from the guard.
	Replayed  bool
	RevokedAt time.Time
}

// Classifier returns the families a candidate may belong to, in order.
type Classifier interface {
	Classify(candidate string) []tokentype.Descriptor
}

// OwnerResolver maps an owner email to a Slack user id.
type OwnerResolver interface {
	SlackIDByEmail(ctx context.Context, email string) (string, error)
}

// Dispatcher is safe for concurrent use when its collaborators are.
type Dispatcher struct {
	classifier Classifier
	guard      guard.Store
	owners     OwnerResolver
	logger     *debug.Logger
	reporter   report.Reporter
	now        func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithGuard enables replay of already-revoked tokens.
func WithGuard(s guard.Store) Option { return func(d *Dispatcher) { d.guard = s } }

// WithOwnerResolver enables Slack id enrichment.
func WithOwnerResolver(r OwnerResolver) Option { return func(d *Dispatcher) { d.owners = r } }

func WithLogger(l *debug.Logger) Option { return func(d *Dispatcher) { d.logger = l } }

func WithReporter(r report.Reporter) Option { return func(d *Dispatcher) { d.reporter = r } }

// WithClock overrides the time source used for RevokedAt.
func WithClock(now func() time.Time) Option { return func(d *Dispatcher) { d.now = now } }

// New returns a Dispatcher over classifier.
func New(classifier Classifier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		classifier: classifier,
		logger:     debug.Discard(),
		reporter:   report.Nop{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch revokes candidate with the first matching family that succeeds.
// aux carries companion secrets such as the xoxd cookie.
//
// When ctx is cancelled between attempts, the partial Result is returned with
// ctx.Err(); Attempts tells the caller which providers may have acted. When
// every attempt failed and one of them lacked a companion secret, the error is
// a *CompanionError instead of a KindInvalid result.
func (d *Dispatcher) Dispatch(ctx context.Context, candidate string, aux tokentype.Aux) (Result, error) {
	token := strings.TrimSpace(candidate)
	if token == "" {
		return Result{}, ErrEmptyToken
	}

	matches := d.classifier.Classify(token)
	if len(matches) == 0 {
		d.logger.Debug("candidate matched no token type")
		return Result{Kind: KindUnrecognized}, nil
	}
	res := Result{Redacted: matches[0].Redact(token)}
	for _, m := range matches {
		res.Matched = append(res.Matched, m.Info().ID)
	}

	fp := guard.Fingerprint(token)
	if entry, ok := d.lookup(ctx, fp); ok {
		d.logger.Info("replaying recorded revocation", "token_type", entry.TokenType, "token", entry.Redacted)
		return replay(res, entry), nil
	}

	env := tokentype.Env{Logger: d.logger, Reporter: d.reporter}
	var missing *CompanionError
	for _, desc := range matches {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		info := desc.Info()
		res.Attempts = append(res.Attempts, info.ID)
		out := tokentype.SafeRevoke(ctx, env, desc, token, aux)
		if !out.Success {
			d.logger.Debug("revoke attempt failed", "token_type", info.ID, "err", out.Error)
			if missing == nil && errors.Is(out.Err, tokentype.ErrMissingAux) {
				missing = &CompanionError{TokenType: info.ID, Err: out.Err}
			}
			continue
		}
		if out.Status == types.StatusUnspecified {
			out.Status = types.StatusComplete
		}
		res.Kind = KindRevoked
		res.Winner = info
		res.Outcome = out
		res.Redacted = desc.Redact(token)
		res.RevokedAt = d.now().UTC()
		d.enrich(ctx, &res)
		d.record(ctx, fp, res)
		d.logger.Info("token revoked", "token_type", info.ID, "status", out.Status, "token", res.Redacted)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if missing != nil {
		d.logger.Info("companion secret missing", "token_type", missing.TokenType, "token", res.Redacted)
		return res, missing
	}
	res.Kind = KindInvalid
	d.logger.Info("no revoker accepted token", "attempts", len(res.Attempts), "token", res.Redacted)
	return res, nil
}

func (d *Dispatcher) lookup(ctx context.Context, fp string) (guard.Entry, bool) {
	if d.guard == nil {
		return guard.Entry{}, false
	}
	entry, ok, err := d.guard.Get(ctx, fp)
	if err != nil {
		d.logger.Warn("guard lookup failed", "err", err)
		return guard.Entry{}, false
	}
	return entry, ok
}

// record remembers complete revocations. action_needed tokens may still be
// live, so they stay eligible for another attempt.
func (d *Dispatcher) record(ctx context.Context, fp string, res Result) {
	if d.guard == nil || res.Outcome.Status != types.StatusComplete {
		return
	}
	err := d.guard.Put(ctx, fp, guard.Entry{
		TokenType:    res.Winner.ID,
		TokenName:    res.Winner.Name,
		Status:       res.Outcome.Status,
		Redacted:     res.Redacted,
		OwnerEmail:   res.Outcome.OwnerEmail,
		OwnerSlackID: res.Outcome.OwnerSlackID,
		KeyName:      res.Outcome.KeyName,
		RevokedAt:    res.RevokedAt,
	})
	if err != nil {
		d.logger.Warn("guard record failed", "err", err)
	}
}

func (d *Dispatcher) enrich(ctx context.Context, res *Result) {
	if d.owners == nil || res.Outcome.OwnerSlackID != "" || !strings.Contains(res.Outcome.OwnerEmail, "@") {
		return
	}
	id, err := d.owners.SlackIDByEmail(ctx, res.Outcome.OwnerEmail)
	if err != nil {
		d.logger.Debug("slack id lookup failed", "err", err)
		return
	}
	res.Outcome.OwnerSlackID = id
}

func replay(res Result, e guard.Entry) Result {
	res.Kind = KindRevoked
	res.Replayed = true
	res.Winner = tokentype.Info{ID: e.TokenType, Name: e.TokenName}
	res.Redacted = e.Redacted
	res.RevokedAt = e.RevokedAt
	res.Outcome = tokentype.Outcome{
		Success:      true,
		Status:       e.Status,
		OwnerEmail:   e.OwnerEmail,
		OwnerSlackID: e.OwnerSlackID,
		KeyName:      e.KeyName,
	}
	return res
}
