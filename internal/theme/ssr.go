package theme

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/atlanticdynamic/agenttheme/internal/config"
)

//go:embed head.html.tmpl
var headSource string

// styleEscaper keeps configuration text inside the style element from closing it.
var styleEscaper = strings.NewReplacer("<", `\3C `)

var headTemplate = template.Must(template.New("head").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(headSource))

// SSR collects the theme while a page is rendered on the server and writes it out as an HTML
// head fragment.
type SSR struct {
	mu      sync.Mutex
	site    config.Site
	css     string
	classes []string
	applied string
}

// NewSSR creates a server-side sink for the given site metadata.
func NewSSR(site config.Site) *SSR {
	return &SSR{site: site}
}

// WriteStylesheet stores css for the next Render.
func (s *SSR) WriteStylesheet(css string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.css = css
	return nil
}

// SetThemeToken records the root theme token, replacing any earlier one.
func (s *SSR) SetThemeToken(token string) error {
	if err := checkThemeToken(token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes = replaceThemeToken(s.classes, s.applied, token)
	s.applied = token
	return nil
}

// HTMLClass returns the value for the class attribute of the html element.
func (s *SSR) HTMLClass() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.classes, " ")
}

// Render writes the head fragment: document metadata, icon links and the theme style element.
func (s *SSR) Render(w io.Writer) error {
	s.mu.Lock()
	data := struct {
		Site    config.Site
		StyleID string
		CSS     template.CSS
	}{
		Site:    s.site,
		StyleID: StyleElementID,
		CSS:     template.CSS(styleEscaper.Replace(s.css)),
	}
	s.mu.Unlock()

	if err := headTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render head: %w", err)
	}
	return nil
}
