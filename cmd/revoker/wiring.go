package main

import (
	"context"
	"strings"

	"github.com/suryansh-23/revoker/internal/dispatch"
	"github.com/suryansh-23/revoker/internal/guard"
	"github.com/suryansh-23/revoker/internal/tokentype"
)

const (
	guardDisabled = "disabled"
	guardRedis    = "redis"
	guardMemory   = "memory"
	// guardOff is reported when the guard is enabled but nothing outlives the
	// process: single-token runs without redis remember nothing.
	guardOff = "off"
)

// openGuard returns the guard store for a dispatcher. Redis is shared across
// runs. The in-memory store only helps a dispatcher that handles several
// tokens, so it is used for batch runs alone.
func (s *appState) openGuard(ctx context.Context, batch bool) (guard.Store, string) {
	g := s.cfg.Guard
	if !g.Enabled {
		return nil, guardDisabled
	}
	if addr := strings.TrimSpace(g.RedisAddr); addr != "" {
		client, err := guard.Dial(ctx, addr)
		if err == nil {
			store := guard.NewRedis(client, g.TTL())
			s.closers = append(s.closers, store)
			return store, guardRedis
		}
		s.logger.Warn("redis guard unavailable", "addr", addr, "err", err)
	}
	if !batch {
		return nil, guardOff
	}
	return guard.NewMemory(g.TTL(), g.MaxEntries), guardMemory
}

// batchGuardMode reports what openGuard picks for a batch run given the mode
// of a single-token run.
func batchGuardMode(single string) string {
	if single == guardOff {
		return guardMemory
	}
	return single
}

func (s *appState) newDispatcher(ctx context.Context, batch bool) *dispatch.Dispatcher {
	opts := []dispatch.Option{
		dispatch.WithLogger(s.logger),
		dispatch.WithReporter(s.reporter),
	}
	if store, mode := s.openGuard(ctx, batch); store != nil {
		s.logger.Debug("guard enabled", "mode", mode)
		opts = append(opts, dispatch.WithGuard(store))
	}
	if s.env.SlackBotToken != "" {
		opts = append(opts, dispatch.WithOwnerResolver(tokentype.NewSlackDirectory(s.env)))
	}
	return dispatch.New(s.registry, opts...)
}
