package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields is a type alias for a map of field names to values that can be logged.
// It's used for structured logging to add context to log messages.
type Fields map[string]interface{}

// Logger defines the interface for all logging operations.
// It provides methods for different log levels and structured logging capabilities.
type Logger interface {
	// Debug logs a message at debug level. Only shown when verbosity >= 2
	Debug(msg string)

	// Info logs a message at info level. Shown when verbosity >= 1 or on the file sink.
	Info(msg string)

	// Warn logs a message at warn level. Always shown.
	Warn(msg string)

	// Error logs a message at error level. Always shown.
	Error(msg string)

	// Trace logs a message at trace level. Only shown when verbosity >= 3
	Trace(msg string)

	// WithFields returns a new Logger with the given fields added to its context.
	// Fields are included in all subsequent log messages until cleared.
	WithFields(fields Fields) Logger
}

// Encoding selects how console records are rendered.
type Encoding string

const (
	// EncodingJSON renders one JSON object per record
	EncodingJSON Encoding = "json"

	// EncodingConsole renders plain "time [LEVEL]: message" lines
	EncodingConsole Encoding = "console"
)

// TimeLayout is the timestamp layout used by the plain-text encoders.
const TimeLayout = "2006-01-02 15:04:05"

// Config holds the configuration for creating a new logger instance.
type Config struct {
	// Verbosity determines the console logging level:
	// 0: Warn, Error (default)
	// 1: Info + Level 0
	// 2: Debug + Level 1
	// 3: Trace + Level 2
	Verbosity int

	// Output specifies where console logs should be written.
	// If nil, defaults to os.Stderr
	Output io.Writer

	// Encoding of the console sink. Defaults to EncodingConsole.
	Encoding Encoding

	// File is an optional second sink receiving info records and above
	// (debug as well when Verbosity >= 2), always in plain-text encoding.
	File io.Writer
}

type logger struct {
	zap       *zap.Logger
	verbosity int
}

// NewLogger creates a new Logger instance with the given configuration.
// If no output is specified in the config, os.Stderr will be used.
//
// Example:
//
//	logger := NewLogger(Config{
//	    Verbosity: 1,
//	})
//
//	logger.WithFields(Fields{
//	    "component": "organizer",
//	}).Info("Run started")
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var consoleEncoder zapcore.Encoder
	switch config.Encoding {
	case EncodingJSON:
		consoleEncoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
	default:
		consoleEncoder = zapcore.NewConsoleEncoder(textEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(config.Output), getLogLevel(config.Verbosity)),
	}

	if config.File != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(textEncoderConfig()),
			zapcore.AddSync(config.File),
			getFileLevel(config.Verbosity),
		))
	}

	return &logger{
		zap:       zap.New(zapcore.NewTee(cores...)),
		verbosity: config.Verbosity,
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &logger{zap: zap.NewNop()}
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// textEncoderConfig produces lines like "2024-01-20 15:04:05 [INFO]: message {fields}".
func textEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]:")
		},
		EncodeTime:     zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func getLogLevel(verbosity int) zapcore.LevelEnabler {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func getFileLevel(verbosity int) zapcore.LevelEnabler {
	if verbosity >= 2 {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Implementation of Logger interface
func (l *logger) Debug(msg string) {
	l.zap.Debug(msg)
}

func (l *logger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *logger) Warn(msg string) {
	l.zap.Warn(msg)
}

func (l *logger) Error(msg string) {
	l.zap.Error(msg)
}

func (l *logger) Trace(msg string) {
	if l.verbosity >= 3 {
		l.zap.Debug("TRACE: " + msg)
	}
}

func (l *logger) WithFields(fields Fields) Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return &logger{
		zap:       l.zap.With(zapFields...),
		verbosity: l.verbosity,
	}
}
