// Package logger configures the process-wide logrus logger. Output goes to a
// rotating file because the terminal is owned by the game screen.
package logger

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged.
type Options struct {
	File       string // empty disables file output
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Setup configures logrus and returns an entry tagged with a fresh session id.
// The returned closer flushes and closes the log file.
func Setup(opts Options) (*logrus.Entry, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(level)

	var closer io.Closer = nopCloser{}
	if opts.File == "" {
		logrus.SetOutput(io.Discard)
	} else {
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		logrus.SetOutput(sink)
		closer = sink
	}

	entry := logrus.WithField("session", uuid.New().String())
	return entry, closer, nil
}

// ParseLevel accepts logrus level names in any case; empty means info.
func ParseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(strings.ToLower(s))
	if err != nil {
		return 0, errors.Wrapf(err, "log level")
	}
	return level, nil
}

// Discard returns an entry that writes nowhere, for tests and tools.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
