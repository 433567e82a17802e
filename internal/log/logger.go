package log

import (
	"io"
	"os"
	"strings"

	"jsonedit/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is a levelled structured logger backed by logrus.
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.entry.Logger.SetOutput(w)
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(l *Logger) {
		l.entry.Logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithLevel sets the minimum level. Unknown names leave the level unchanged.
func WithLevel(name string) Option {
	return func(l *Logger) {
		if lvl, err := logrus.ParseLevel(name); err == nil {
			l.level = lvl
		}
	}
}

// NewLogger creates a logger. Without WithOutput it writes nowhere, since the
// terminal belongs to the editor while it runs.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.TraceLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	l := &Logger{entry: logrus.NewEntry(base), level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ValidLevel reports whether name is a level WithLevel understands.
func ValidLevel(name string) bool {
	_, err := logrus.ParseLevel(name)
	return err == nil
}

// OpenFile opens path for appending log lines.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// SetDebug forces debug output regardless of the configured level.
func SetDebug(debug bool) {
	isDebug = debug
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

func (l *Logger) enabled(lvl logrus.Level) bool {
	if lvl == logrus.DebugLevel && isDebug {
		return true
	}
	return lvl <= l.level
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), level: l.level}
}

func (l *Logger) log(lvl logrus.Level, msg string) {
	if !l.enabled(lvl) {
		return
	}
	l.entry.Log(lvl, msg)
}

func (l *Logger) logf(lvl logrus.Level, format string, args ...interface{}) {
	if !l.enabled(lvl) {
		return
	}
	l.entry.Logf(lvl, format, args...)
}

func (l *Logger) Debug(msg string)                          { l.log(logrus.DebugLevel, msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(logrus.DebugLevel, format, args...) }
func (l *Logger) Info(msg string)                           { l.log(logrus.InfoLevel, msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logf(logrus.InfoLevel, format, args...) }
func (l *Logger) Warn(msg string)                           { l.log(logrus.WarnLevel, msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(logrus.WarnLevel, format, args...) }
func (l *Logger) Error(msg string)                          { l.log(logrus.ErrorLevel, msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(logrus.ErrorLevel, format, args...) }

// Info logs on the package logger
func Info(msg string) {
	logger.Info(msg)
}

// Infof logs a formatted message on the package logger
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a debug message
func Debug(msg string) {
	logger.Debug(msg)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message
func Warn(msg string) {
	logger.Warn(msg)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message
func Error(msg string) {
	logger.Error(msg)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger annotated with err and, for
// application errors, its kind and the value it was raised for.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var serErr *errors.SerializationError
	var cfgErr *errors.ConfigError
	var outErr *errors.OutputError
	switch {
	case errors.As(err, &serErr):
		fields = append(fields, F("key", serErr.Key()))
	case errors.As(err, &cfgErr):
		fields = append(fields, F("param", cfgErr.Param()))
	case errors.As(err, &outErr):
		fields = append(fields, F("path", outErr.Path()))
	}
	return logger.With(fields...)
}

// Level returns the package logger's minimum level name.
func Level() string {
	return strings.ToLower(logger.level.String())
}
