// Package redis implements a shared cache adapter on top of go-redis.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/viant/personnel/cache"
)

const scanCount = 100

type adapter struct {
	client    redis.UniversalClient
	namespace string
}

// New creates a redis adapter, keys are prefixed with namespace
func New(client redis.UniversalClient, namespace string) cache.Adapter {
	return &adapter{client: client, namespace: namespace}
}

func (a *adapter) key(key string) string {
	return a.namespace + key
}

func (a *adapter) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := a.client.Get(ctx, a.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = cache.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (a *adapter) Set(ctx context.Context, key string, ttl time.Duration, data []byte) error {
	return a.client.Set(ctx, a.key(key), data, ttl).Err()
}

func (a *adapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, a.key(key)).Err()
}

func (a *adapter) DeletePrefix(ctx context.Context, prefix string) error {
	iter := a.client.Scan(ctx, 0, a.key(prefix)+"*", scanCount).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return a.client.Del(ctx, keys...).Err()
}
