package guard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoker:revoked:"

// Redis shares the guard between processes.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// NewRedis wraps client. A zero ttl stores entries without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(fp string) string { return keyPrefix + fp }

func (r *Redis) Get(ctx context.Context, fp string) (Entry, bool, error) {
	data, err := r.client.Get(ctx, key(fp)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("get guard entry: %w", err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false, fmt.Errorf("decode guard entry: %w", err)
	}
	return e, true, nil
}

func (r *Redis) Put(ctx context.Context, fp string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode guard entry: %w", err)
	}
	if err := r.client.Set(ctx, key(fp), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set guard entry: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error { return r.client.Close() }
