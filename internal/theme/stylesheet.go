package theme

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/atlanticdynamic/agenttheme/internal/config"
)

//go:embed stylesheet.css.tmpl
var stylesheetSource string

// hoverMix is the share of the base color kept when darkening for hover states.
const hoverMix = 80

var cssStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\A `,
	"\r", `\D `,
	"<", `\3C `,
)

var stylesheetTemplate = template.Must(template.New("stylesheet").Funcs(template.FuncMap{
	"cssString": cssString,
	"darken": func(role string) string {
		return mix("var(--agent-"+role+")", hoverMix, "black")
	},
}).Parse(stylesheetSource))

type stylesheetData struct {
	Root    string
	Buttons []string
	Logo    string
	Banner  string
}

// cssString escapes s for use inside a double-quoted CSS string.
func cssString(s string) string {
	return cssStringEscaper.Replace(s)
}

// RootCSS renders only the :root block holding the agent's variables. Server rendering uses it
// for the initial paint.
func RootCSS(agent *config.Agent) string {
	return ":root {\n" + VariablesFor(agent).Declarations() + "\n}\n"
}

// Stylesheet renders the :root variables followed by the utility class catalogue.
func Stylesheet(agent *config.Agent) (string, error) {
	data := stylesheetData{
		Root:    RootCSS(agent),
		Buttons: []string{"primary", "secondary"},
		Logo:    agent.Assets.Logo,
		Banner:  agent.Assets.BannerLogo,
	}

	var b strings.Builder
	if err := stylesheetTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderStylesheet, err)
	}
	return b.String(), nil
}
