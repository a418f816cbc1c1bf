package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// StyleElementID identifies the single style element holding the generated stylesheet.
const StyleElementID = "agent-theme-variables"

// themeClassPattern matches utility-style theme tokens stripped before a new token is applied.
var themeClassPattern = regexp.MustCompile(`^theme-\w+$`)

// Sink receives the derived theme. Implementations decide where the stylesheet and the root
// theme token end up.
type Sink interface {
	// WriteStylesheet replaces the generated stylesheet text.
	WriteStylesheet(css string) error
	// SetThemeToken replaces the theme class applied to the document root.
	SetThemeToken(token string) error
}

func checkThemeToken(token string) error {
	if token == "" || strings.ContainsFunc(token, isClassSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidThemeToken, token)
	}
	return nil
}

func isClassSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// replaceThemeToken drops theme-* tokens, the previously applied token and any copy of token
// from classes, then appends token once.
func replaceThemeToken(classes []string, previous, token string) []string {
	kept := make([]string, 0, len(classes)+1)
	for _, class := range classes {
		if themeClassPattern.MatchString(class) || class == previous || class == token {
			continue
		}
		kept = append(kept, class)
	}
	return append(kept, token)
}
