package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/percent"
)

var _ percent.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f percent.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f percent.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f percent.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f percent.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
