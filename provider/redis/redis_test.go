package redis

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	p, err := New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		CloseClient: true,
		ScanCount:   2, // force several SCAN rounds
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestNewRejectsNilClient(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNilClient)
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	ok, err := p.Set(ctx, "user:a%3Ab", []byte("v"), 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, time.Minute, mr.TTL("user:a%3Ab"))

	b, hit, err := p.Get(ctx, "user:a%3Ab")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []byte("v"), b)

	require.NoError(t, p.Del(ctx, "user:a%3Ab"))
	_, hit, err = p.Get(ctx, "user:a%3Ab")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestSetWithoutTTLDoesNotExpire(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	_, err := p.Set(ctx, "user:k", []byte("v"), 1, -time.Second)
	require.NoError(t, err)
	require.Zero(t, mr.TTL("user:k"))
}

func TestKeysFiltersByPrefix(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	for _, k := range []string{"user:a", "user:b%20c", "user:%F0%9F%91%BE", "order:a", "user2:x", "users:y"} {
		_, err := p.Set(ctx, k, []byte("x"), 1, 0)
		require.NoError(t, err)
	}

	keys, err := p.Keys(ctx, "user:")
	require.NoError(t, err)
	sort.Strings(keys)
	require.Equal(t, []string{"user:%F0%9F%91%BE", "user:a", "user:b%20c"}, keys)

	keys, err = p.Keys(ctx, "missing:")
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestKeysQuotesGlobMetacharacters(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	for _, k := range []string{"a*:1", "ab:2", "a?:3"} {
		_, err := p.Set(ctx, k, []byte("x"), 1, 0)
		require.NoError(t, err)
	}

	keys, err := p.Keys(ctx, "a*:")
	require.NoError(t, err)
	require.Equal(t, []string{"a*:1"}, keys)
}

func TestGlobQuote(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"users:", "users:"},
		{"users%3A:", "users%3A:"},
		{"a*b", `a\*b`},
		{"q?[x]", `q\?\[x\]`},
		{`back\slash`, `back\\slash`},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, GlobQuote(tc.in), "input %q", tc.in)
	}
}
