package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/percent"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	KeyRejectedEvery  uint64
	ValueDroppedEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	keyRejectedCtr  atomic.Uint64
	valueDroppedCtr atomic.Uint64
}

var _ percent.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) KeyRejected(storageKey string, err error) {
	if h.l == nil || !sample(h.opts.KeyRejectedEvery, &h.keyRejectedCtr) {
		return
	}
	attrs := []any{"key", h.redact(storageKey), "err", err}
	var de *percent.DecodeError
	if errors.As(err, &de) {
		attrs = append(attrs, "kind", de.Kind.String(), "offset", de.Offset)
	}
	h.l.Warn("percent.key_rejected", attrs...)
}

func (h *Hooks) ValueDropped(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.ValueDroppedEvery, &h.valueDroppedCtr) {
		return
	}
	h.l.Debug("percent.value_dropped",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("percent.provider_set_rejected",
		"key", h.redact(storageKey))
}
