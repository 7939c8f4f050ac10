package logrus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/percent"
	lr "github.com/unkn0wn-root/percent/log/logrus"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	var l percent.Logger = lr.LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("dropped undecodable value", percent.Fields{"key": "user:k"})
	l.Error("list failed", nil)

	require.Len(t, hook.Entries, 2)
	require.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
	require.Equal(t, "user:k", hook.Entries[0].Data["key"])
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
