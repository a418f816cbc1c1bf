// Package theme derives CSS custom properties, stylesheets, color scales and design tokens
// from an agent configuration, and applies them to a document through a Sink.
package theme

import (
	"slices"
	"strings"

	"github.com/atlanticdynamic/agenttheme/internal/config"
)

// CSS custom property names set on :root.
const (
	VarPrimary   = "--agent-primary"
	VarSecondary = "--agent-secondary"
	VarAccent    = "--agent-accent"
)

// Variables maps CSS custom property names to their values.
type Variables map[string]string

// VariablesFor returns the brand color variables of agent. The accent falls back to the
// primary color when unset.
func VariablesFor(agent *config.Agent) Variables {
	return Variables{
		VarPrimary:   agent.Theme.PrimaryColor,
		VarSecondary: agent.Theme.SecondaryColor,
		VarAccent:    agent.Theme.Accent(),
	}
}

// Names returns the variable names in sorted order.
func (v Variables) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Declarations renders one "  name: value;" line per variable, sorted by name.
func (v Variables) Declarations() string {
	lines := make([]string, 0, len(v))
	for _, name := range v.Names() {
		lines = append(lines, "  "+name+": "+v[name]+";")
	}
	return strings.Join(lines, "\n")
}
