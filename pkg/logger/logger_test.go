package logger

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		logFunc        func(Logger)
		expectedLevel  string
		expectedMsg    string
		shouldLog      bool
	}{
		{
			name:           "warn level with default verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Warn("warn message")
			},
			expectedLevel: "warn",
			expectedMsg:   "warn message",
			shouldLog:     true,
		},
		{
			name:           "info level with default verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Info("info message")
			},
			shouldLog: false,
		},
		{
			name:           "info level with sufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Info("info message")
			},
			expectedLevel: "info",
			expectedMsg:   "info message",
			shouldLog:     true,
		},
		{
			name:           "debug level with insufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			shouldLog: false,
		},
		{
			name:           "debug level with sufficient verbosity",
			verbosityLevel: 2,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			expectedLevel: "debug",
			expectedMsg:   "debug message",
			shouldLog:     true,
		},
		{
			name:           "trace level with insufficient verbosity",
			verbosityLevel: 2,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			shouldLog: false,
		},
		{
			name:           "trace level with sufficient verbosity",
			verbosityLevel: 3,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			expectedLevel: "debug",
			expectedMsg:   "TRACE: trace message",
			shouldLog:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{
				Verbosity: tt.verbosityLevel,
				Output:    &buf,
				Encoding:  EncodingJSON,
			})

			tt.logFunc(logger)

			if !tt.shouldLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry LogEntry
			err := json.Unmarshal(buf.Bytes(), &entry)
			if err != nil {
				t.Logf("Raw buffer content: %s", buf.String())
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedMsg, entry.Message)
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Verbosity: 1,
		Output:    &buf,
		Encoding:  EncodingJSON,
	})

	logger.WithFields(Fields{
		"key1": "value1",
		"key2": 123,
	}).Info("test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(123), entry["key2"])
	assert.Equal(t, "test message", entry["message"])
}

func TestLoggerFileSink(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewLogger(Config{
		Verbosity: 0,
		Output:    &console,
		File:      &file,
	})

	logger.Debug("hidden everywhere")
	logger.Info("grouped files")
	logger.WithFields(Fields{"file": "badname.txt"}).Error("failed to organize file")

	lines := bytes.Split(bytes.TrimSpace(file.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	linePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[(INFO|ERROR)\]: `)
	assert.Regexp(t, linePattern, string(lines[0]))
	assert.Contains(t, string(lines[0]), "[INFO]: grouped files")
	assert.Contains(t, string(lines[1]), "[ERROR]: failed to organize file")
	assert.Contains(t, string(lines[1]), `"file": "badname.txt"`)

	// console stays at warn level by default
	assert.NotContains(t, console.String(), "grouped files")
	assert.Contains(t, console.String(), "failed to organize file")
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.WithFields(Fields{"a": 1}).Error("discarded")
		log.Trace("discarded")
	})
}
