package theme

import "strconv"

// FontSize is a font size paired with its line height.
type FontSize [2]string

// Colors is the color section of the design tokens.
type Colors struct {
	AgentPrimary   string            `json:"agent-primary"`
	AgentSecondary string            `json:"agent-secondary"`
	AgentAccent    string            `json:"agent-accent"`
	Brand          map[string]string `json:"brand"`
}

// Tokens are the design tokens handed to the utility-class framework. Every color resolves
// through the runtime CSS variables, so tokens never change with configuration.
type Tokens struct {
	FontFamily map[string][]string `json:"fontFamily"`
	FontSize   map[string]FontSize `json:"fontSize"`
	Colors     Colors              `json:"colors"`
}

// TailwindTokens returns the design tokens extending the default Tailwind theme.
func TailwindTokens() Tokens {
	primary := "var(" + VarPrimary + ")"

	brand := map[string]string{"DEFAULT": primary}
	for label, value := range ColorScale(primary) {
		brand[strconv.Itoa(label)] = value
	}
	brand["950"] = mix(primary, 40, "black")

	return Tokens{
		FontFamily: map[string][]string{
			"inter":      {"Inter", "system-ui", "sans-serif"},
			"geist":      {"Geist", "sans-serif"},
			"geist-mono": {"Geist Mono", "monospace"},
		},
		FontSize: map[string]FontSize{
			"xs":   {"12px", "1.4"},
			"sm":   {"14px", "1.5"},
			"base": {"15px", "1.6"},
			"lg":   {"18px", "1.5"},
			"xl":   {"20px", "1.4"},
			"2xl":  {"24px", "1.4"},
			"3xl":  {"32px", "1.4"},
			"4xl":  {"40px", "1.4"},
			"5xl":  {"48px", "1.4"},
			"6xl":  {"56px", "1.4"},
			"7xl":  {"64px", "1.4"},
		},
		Colors: Colors{
			AgentPrimary:   primary,
			AgentSecondary: "var(" + VarSecondary + ")",
			AgentAccent:    "var(" + VarAccent + ")",
			Brand:          brand,
		},
	}
}
