package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/personnel/cache"
)

func TestAdapter(t *testing.T) {
	ctx := context.Background()
	anAdapter := New()

	_, err := anAdapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, anAdapter.Set(ctx, "a", time.Minute, []byte("1")))
	data, err := anAdapter.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), data)

	require.NoError(t, anAdapter.Set(ctx, "expired", -time.Second, []byte("2")))
	_, err = anAdapter.Get(ctx, "expired")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, anAdapter.Delete(ctx, "a"))
	_, err = anAdapter.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, anAdapter.Set(ctx, "p/1", time.Minute, []byte("1")))
	require.NoError(t, anAdapter.Set(ctx, "p/2", time.Minute, []byte("2")))
	require.NoError(t, anAdapter.Set(ctx, "q/1", time.Minute, []byte("3")))
	require.NoError(t, anAdapter.DeletePrefix(ctx, "p/"))
	_, err = anAdapter.Get(ctx, "p/2")
	assert.ErrorIs(t, err, cache.ErrNotFound)
	data, err = anAdapter.Get(ctx, "q/1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), data)
}
