package theme

import (
	"log/slog"

	"github.com/atlanticdynamic/agenttheme/internal/config"
)

// Option represents a functional option for configuring a Manager.
type Option func(*Manager)

// WithConfigCallback sets the function that provides the current agent configuration.
func WithConfigCallback(callback func() *config.Agent) Option {
	return func(m *Manager) {
		if callback != nil {
			m.configCallback = callback
		}
	}
}

// WithLogHandler sets a custom slog handler for the Manager.
func WithLogHandler(handler slog.Handler) Option {
	return func(m *Manager) {
		if handler != nil {
			m.logger = slog.New(handler).WithGroup("theme.Manager")
		}
	}
}
