package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: " json ", want: FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     levelSettings
	}{
		{logLevel: "trace", want: levelSettings{level: slog.LevelDebug, caller: true, timestamps: true}},
		{logLevel: "DeBuG", want: levelSettings{level: slog.LevelDebug, timestamps: true}},
		{logLevel: "info", want: levelSettings{level: slog.LevelInfo}},
		{logLevel: "warning", want: levelSettings{level: slog.LevelWarn}},
		{logLevel: "ERROR", want: levelSettings{level: slog.LevelError}},
		{logLevel: "", want: levelSettings{level: slog.LevelInfo}},
		{logLevel: "verbose", want: levelSettings{level: slog.LevelInfo}},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.logLevel))
		})
	}
}

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		log      func(*slog.Logger)
	}{
		{name: "debug", logLevel: "debug", log: func(l *slog.Logger) { l.Debug("test message", "key", "value") }},
		{name: "info", logLevel: "info", log: func(l *slog.Logger) { l.Info("test message", "key", "value") }},
		{name: "warn", logLevel: "warn", log: func(l *slog.Logger) { l.Warn("test message", "key", "value") }},
		{name: "error", logLevel: "error", log: func(l *slog.Logger) { l.Error("test message", "key", "value") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.NotNil(t, handler)

			tt.log(slog.New(handler))

			output := buf.String()
			assert.Contains(t, output, "test message")
			assert.Contains(t, output, "key")
			assert.Contains(t, output, "value")
		})
	}
}

func TestSetupHandlerText_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerText("error", buf))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.NotContains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSetupHandlerJSON(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel string
		wantSrc   bool
	}{
		{name: "trace adds source", logLevel: "trace", wantLevel: `"level":"INFO"`, wantSrc: true},
		{name: "info", logLevel: "info", wantLevel: `"level":"INFO"`},
		{name: "unknown defaults to info", logLevel: "unknown", wantLevel: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(SetupHandlerJSON(tt.logLevel, buf))

			logger.Info("test message", "key", "value")

			output := buf.String()
			assert.Contains(t, output, `"msg":"test message"`)
			assert.Contains(t, output, `"key":"value"`)
			assert.Contains(t, output, tt.wantLevel)
			if tt.wantSrc {
				assert.Contains(t, output, `"source"`)
			}
		})
	}
}

func TestSetupHandlerJSON_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("warn", buf))

	logger.Info("info message")
	logger.Warn("warn message")

	assert.NotContains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestNewHandler(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.IsType(t, &log.Logger{}, NewHandler(FormatText, "info", buf))
	assert.IsType(t, &slog.JSONHandler{}, NewHandler(FormatJSON, "info", buf))
	assert.IsType(t, &log.Logger{}, NewHandler("", "info", buf))
}

func TestSetupLogger(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	buf := &bytes.Buffer{}
	SetupLogger("debug", FormatJSON, buf)

	slog.Debug("default logger message", "component", "logging")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"default logger message"`)
	assert.Contains(t, lines[0], `"level":"DEBUG"`)
}
