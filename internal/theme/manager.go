package theme

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/agenttheme/internal/config"
)

// Manager applies the theme derived from the current configuration to a Sink. The first
// Initialize applies it; later calls do nothing until Update forces a re-apply.
type Manager struct {
	mu             sync.Mutex
	sink           Sink
	configCallback func() *config.Agent
	logger         *slog.Logger
	initialized    bool
}

// NewManager creates a Manager writing to sink. Without WithConfigCallback the default
// configuration is used.
func NewManager(sink Sink, opts ...Option) (*Manager, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	m := &Manager{
		sink:           sink,
		configCallback: config.NewDefault,
		logger:         slog.Default().WithGroup("theme.Manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Initialize applies the theme on the first call only.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		m.logger.Debug("Theme already initialized")
		return nil
	}
	return m.apply()
}

// Update re-applies the theme unconditionally.
func (m *Manager) Update() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apply()
}

// apply must be called with mu held.
func (m *Manager) apply() error {
	agent, err := m.config()
	if err != nil {
		return err
	}

	if err := checkThemeToken(agent.Theme.ThemeName); err != nil {
		return fmt.Errorf("%w: %w", ErrApplyThemeToken, err)
	}

	css, err := Stylesheet(agent)
	if err != nil {
		return err
	}
	if err := m.sink.WriteStylesheet(css); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStylesheet, err)
	}
	if err := m.sink.SetThemeToken(agent.Theme.ThemeName); err != nil {
		return fmt.Errorf("%w: %w", ErrApplyThemeToken, err)
	}

	m.initialized = true
	m.logger.Debug("Theme applied",
		"theme", agent.Theme.ThemeName,
		"primary", agent.Theme.PrimaryColor,
		"bytes", len(css))
	return nil
}

func (m *Manager) config() (*config.Agent, error) {
	agent := m.configCallback()
	if agent == nil {
		return nil, ErrNoConfig
	}
	return agent, nil
}

// ThemeClass returns the theme name of the current configuration.
func (m *Manager) ThemeClass() string {
	agent, err := m.config()
	if err != nil {
		return ""
	}
	return agent.Theme.ThemeName
}

// Variables returns the CSS variables of the current configuration.
func (m *Manager) Variables() Variables {
	agent, err := m.config()
	if err != nil {
		return Variables{}
	}
	return VariablesFor(agent)
}

// ColorVariations returns the shade scale of base.
func (m *Manager) ColorVariations(base string) Scale {
	return ColorScale(base)
}

// IsInitialized reports whether the theme has been applied at least once.
func (m *Manager) IsInitialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}
