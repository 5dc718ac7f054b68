package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
	// With returns a logger that attaches the given fields to every entry.
	With(fields map[string]interface{}) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

var (
	loggerInstance *logrusLogger
	once           sync.Once
)

// New creates the process-wide logger. Only the first call's settings apply.
func New(level, format string) Logger {
	once.Do(func() {
		loggerInstance = newLogrus(os.Stdout, level, format)
	})
	return loggerInstance
}

// NewWithWriter creates a standalone logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	return newLogrus(w, level, format)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return newLogrus(io.Discard, "panic", "text")
}

func newLogrus(w io.Writer, level, format string) *logrusLogger {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Error(msg string, err error) {
	if err != nil {
		l.entry.WithError(err).Error(msg)
		return
	}
	l.entry.Error(msg)
}

func (l *logrusLogger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *logrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *logrusLogger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *logrusLogger) With(fields map[string]interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
