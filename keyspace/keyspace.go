// Package keyspace stores typed values under namespaced, percent-escaped keys.
//
// Storage keys have the form
//
//	<Encode(namespace)>:<Encode(key)>
//
// Escaped text never contains ':', so any user key (including ones holding
// ':' or non-ASCII text) maps to exactly one storage key, no key can reach
// into another namespace, and Keys can recover the original user keys. Stored
// keys that are not in that exact form are never listed.
package keyspace

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/unkn0wn-root/percent"
	c "github.com/unkn0wn-root/percent/codec"
	"github.com/unkn0wn-root/percent/internal/keys"
	pr "github.com/unkn0wn-root/percent/provider"
)

var (
	ErrForeignKey      = errors.New("keyspace: key outside namespace")
	ErrNonCanonical    = errors.New("keyspace: key is not in canonical escaped form")
	ErrScanUnsupported = errors.New("keyspace: provider cannot list keys")
)

type SetCostFunc func(storageKey string, raw []byte) int64

// Options configure a Store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // logical namespace, e.g. "user" or "app:prod:user" (escaped before use)
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         percent.Logger // nil => NopLogger
	Hooks          percent.Hooks  // nil => NopHooks
	DefaultTTL     time.Duration  // 0 => 10m
	KeyMode        percent.Mode   // error reported for malformed escapes in listed keys; default Tolerant
	ComputeSetCost SetCostFunc    // default 1
	Disabled       bool
}

// Store is safe for concurrent use when its Provider is.
type Store[V any] struct {
	ns       string // escaped
	prefix   string
	provider pr.Provider
	codec    c.Codec[V]
	log      percent.Logger
	hooks    percent.Hooks
	ttl      time.Duration
	mode     percent.Mode
	cost     SetCostFunc
	enabled  bool
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("keyspace: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("keyspace: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("keyspace: namespace is required")
	}

	ns := percent.Encode(opts.Namespace)
	s := &Store[V]{
		ns:       ns,
		prefix:   keys.Prefix(ns),
		provider: opts.Provider,
		codec:    opts.Codec,
		mode:     opts.KeyMode,
		enabled:  !opts.Disabled,
	}
	s.log = opts.Logger
	if s.log == nil {
		s.log = percent.NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = percent.NopHooks{}
	}
	s.ttl = coalesce(opts.DefaultTTL, defaultTTL)
	if opts.ComputeSetCost != nil {
		s.cost = opts.ComputeSetCost
	} else {
		s.cost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func (s *Store[V]) Enabled() bool { return s.enabled }

// StorageKey returns the provider key that holds key.
func (s *Store[V]) StorageKey(key string) string {
	return keys.Join(s.ns, percent.Encode(key))
}

// ParseStorageKey recovers the user key from a provider key. It fails with
// ErrForeignKey when storageKey does not belong to this namespace, with a
// *percent.DecodeError when the key part does not decode, and with
// ErrNonCanonical when it decodes but StorageKey would not produce it
// (e.g. "%41" for "A", lowercase hex, a bare '%').
func (s *Store[V]) ParseStorageKey(storageKey string) (string, error) {
	ns, esc, ok := keys.Split(storageKey)
	if !ok || ns != s.ns {
		return "", ErrForeignKey
	}
	k, err := percent.DecodeMode(esc, s.mode)
	if err != nil {
		return "", err
	}
	if percent.Encode(k) != esc {
		return "", ErrNonCanonical
	}
	return k, nil
}

func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.StorageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.codec.Decode(raw)
	if err != nil {
		delErr := s.provider.Del(ctx, k) // self-heal
		s.hooks.ValueDropped(k, "value_decode")
		s.log.Debug("dropped undecodable value", percent.Fields{"key": k, "err": err, "delErr": delErr})
		return zero, false, nil
	}
	return v, true, nil
}

// Set stores value under key. ttl 0 uses DefaultTTL.
func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.ttl
	}
	raw, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	k := s.StorageKey(key)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", percent.Fields{"key": k})
	}
	return nil
}

func (s *Store[V]) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.StorageKey(key))
}

// Keys lists the decoded user keys of this namespace in sorted order. Stored
// keys that do not decode are skipped and reported through Hooks.KeyRejected.
// The provider must implement provider.Scanner.
func (s *Store[V]) Keys(ctx context.Context) ([]string, error) {
	if !s.enabled {
		return nil, nil
	}
	sc, ok := s.provider.(pr.Scanner)
	if !ok {
		return nil, ErrScanUnsupported
	}
	raw, err := sc.Keys(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("keyspace: list %q: %w", s.ns, err)
	}
	out := make([]string, 0, len(raw))
	for _, sk := range raw {
		k, err := s.ParseStorageKey(sk)
		if err != nil {
			s.hooks.KeyRejected(sk, err)
			s.log.Warn("skipping undecodable key", percent.Fields{"key": sk, "err": err})
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store[V]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}
