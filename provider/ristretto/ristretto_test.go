package ristretto

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	ok, err := p.Set(ctx, "users:a%3Ab", []byte("v"), 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	p.Wait()

	b, hit, err := p.Get(ctx, "users:a%3Ab")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []byte("v"), b)

	require.NoError(t, p.Del(ctx, "users:a%3Ab"))
	_, hit, err = p.Get(ctx, "users:a%3Ab")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestGetDropsForeignShape(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	p.c.Set("k", "not bytes", 1)
	p.Wait()

	_, hit, err := p.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, hit)
}
