package tokentype

import (
	"context"
	"fmt"
	"runtime/debug"
)

// All returns one descriptor per supported family in registration order.
// Order matters: when several families match, earlier ones are tried first.
func All(env Env) []Descriptor {
	return []Descriptor{
		NewHCBOAuth(env),
		NewTheseusAPIKey(env),
		NewTheseusPublicAPIKey(env),
		NewSlackXoxp(env),
		NewSlackXoxc(env),
		NewAirtablePAT(env),
	}
}

// SafeRevoke calls d.Revoke and converts a panic into a reported failure.
func SafeRevoke(ctx context.Context, env Env, d Descriptor, candidate string, aux Aux) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			id := d.Info().ID
			err := fmt.Errorf("revoker panic: %v", r)
			env.logger().Error("revoker panicked", "token_type", id, "panic", r, "stack", string(debug.Stack()))
			env.reporter().Capture(err, map[string]string{"token_type": string(id), "stage": "panic"})
			out = Failed("%s: internal error", id)
		}
	}()
	return d.Revoke(ctx, candidate, aux)
}
