// Package logging builds the slog handlers used by the command line tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects the log record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat maps a flag value to a Format. An empty value selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type levelSettings struct {
	level      slog.Level
	caller     bool
	timestamps bool
}

// parseLevel understands the slog level names plus "trace", which is debug with caller info.
// Unknown names fall back to info.
func parseLevel(logLevel string) levelSettings {
	switch strings.ToLower(logLevel) {
	case "trace":
		return levelSettings{level: slog.LevelDebug, caller: true, timestamps: true}
	case "debug":
		return levelSettings{level: slog.LevelDebug, timestamps: true}
	case "warn", "warning":
		return levelSettings{level: slog.LevelWarn}
	case "error":
		return levelSettings{level: slog.LevelError}
	default:
		return levelSettings{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a charmbracelet text handler writing to writer, or stderr when nil.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	settings := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: settings.timestamps,
		ReportCaller:    settings.caller,
		Level:           log.Level(settings.level),
	})
}

// SetupHandlerJSON configures a JSON handler writing to writer, or stderr when nil. Standard
// output stays reserved for generated artifacts.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	settings := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     settings.level,
		AddSource: settings.caller,
	})
}

// NewHandler returns the handler for format.
func NewHandler(format Format, logLevel string, writer io.Writer) slog.Handler {
	if format == FormatJSON {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger installs a default logger with the given level and format.
func SetupLogger(logLevel string, format Format, writer io.Writer) {
	slog.SetDefault(slog.New(NewHandler(format, logLevel, writer)))
}
