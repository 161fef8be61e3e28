package cache

import (
	"context"
	"fmt"
	"time"
)

// DefaultTTL defines default entry time to live
const DefaultTTL = time.Minute

// Entry represents a cached response
type Entry struct {
	Status   int       `msgpack:"status"`
	Body     []byte    `msgpack:"body"`
	StoredAt time.Time `msgpack:"storedAt"`
}

// Cache stores encoded entries in an adapter
type Cache struct {
	adapter Adapter
	codec   Codec
	ttl     time.Duration
	now     func() time.Time
}

// Option represents cache option
type Option func(c *Cache)

// WithCodec sets entry codec
func WithCodec(codec Codec) Option {
	return func(c *Cache) {
		c.codec = codec
	}
}

// WithClock sets entry timestamp source
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a cache, non positive ttl uses DefaultTTL
func New(adapter Adapter, ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ret := &Cache{adapter: adapter, codec: NewMsgpackCodec(), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// TTL returns entry time to live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key returns cache key for a request
func Key(method, path string) string {
	return method + " " + path
}

// Load returns a cached entry or ErrNotFound
func (c *Cache) Load(ctx context.Context, key string) (*Entry, error) {
	data, err := c.adapter.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	entry := &Entry{}
	if err = c.codec.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry %v: %w", key, err)
	}
	return entry, nil
}

// Store saves an entry
func (c *Cache) Store(ctx context.Context, key string, entry *Entry) error {
	if entry.StoredAt.IsZero() {
		entry.StoredAt = c.now()
	}
	data, err := c.codec.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %v: %w", key, err)
	}
	return c.adapter.Set(ctx, key, c.ttl, data)
}

// Invalidate removes the listed keys
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := c.adapter.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to invalidate %v: %w", key, err)
		}
	}
	return nil
}

// InvalidatePrefix removes all keys starting with prefix
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if err := c.adapter.DeletePrefix(ctx, prefix); err != nil {
		return fmt.Errorf("failed to invalidate %v*: %w", prefix, err)
	}
	return nil
}
