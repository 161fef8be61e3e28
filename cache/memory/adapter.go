// Package memory implements an in-process cache adapter on top of ccache.
package memory

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v2"
	"github.com/viant/personnel/cache"
)

type adapter struct {
	cache *ccache.Cache
}

// New creates an adapter with default ccache configuration
func New() cache.Adapter {
	return NewWithConfiguration(ccache.Configure())
}

// NewWithConfiguration creates an adapter with supplied ccache configuration
func NewWithConfiguration(cfg *ccache.Configuration) cache.Adapter {
	return &adapter{cache: ccache.New(cfg)}
}

func (a *adapter) Get(ctx context.Context, key string) ([]byte, error) {
	item := a.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, cache.ErrNotFound
	}
	value, ok := item.Value().([]byte)
	if !ok {
		return nil, cache.ErrNotFound
	}
	return value, nil
}

func (a *adapter) Set(ctx context.Context, key string, ttl time.Duration, data []byte) error {
	a.cache.Set(key, data, ttl)
	return nil
}

func (a *adapter) Delete(ctx context.Context, key string) error {
	a.cache.Delete(key)
	return nil
}

func (a *adapter) DeletePrefix(ctx context.Context, prefix string) error {
	a.cache.DeletePrefix(prefix)
	return nil
}
