package zap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/percent"
	lz "github.com/unkn0wn-root/percent/log/zap"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l percent.Logger = lz.ZapLogger{L: zap.New(core)}

	errBad := errors.New(`percent: invalid escape "z" at offset 1`)
	l.Warn("skipping undecodable key", percent.Fields{"key": "user:%zz", "err": errBad})
	l.Debug("no fields", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	require.Equal(t, "user:%zz", ctx["key"])
	require.Equal(t, errBad.Error(), ctx["err"])
	require.Empty(t, entries[1].Context)
}
