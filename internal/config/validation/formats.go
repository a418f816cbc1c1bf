// Package validation provides format checks for the raw string values of an agent configuration.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbColorPattern = regexp.MustCompile(`^rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)$`)
	hslColorPattern = regexp.MustCompile(`^hsl\(\s*\d+\s*,\s*\d+%\s*,\s*\d+%\s*\)$`)
	uuidPattern     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Format error categories. FormatError values unwrap to one of these.
var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrInvalidBool      = errors.New("invalid boolean")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidUUID      = errors.New("invalid UUID")
)

// FormatError reports a value that does not match the grammar expected for its field.
type FormatError struct {
	Field string
	Value string
	Kind  error
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case ErrInvalidColor:
		return fmt.Sprintf(
			"Invalid color format for %s: %s. Expected hex (#RRGGBB), rgb(r,g,b), or hsl(h,s%%,l%%) format.",
			e.Field, e.Value,
		)
	case ErrInvalidURL:
		return fmt.Sprintf("Invalid URL format for %s: %s", e.Field, e.Value)
	case ErrInvalidBool:
		return fmt.Sprintf("Invalid boolean value for %s: %s. Expected 'true' or 'false'.", e.Field, e.Value)
	case ErrInvalidAssetPath:
		return fmt.Sprintf(
			"Invalid asset path for %s: %s. Expected path starting with '/' or 'http'.",
			e.Field, e.Value,
		)
	case ErrInvalidUUID:
		return fmt.Sprintf("Invalid UUID format for %s: %s", e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Value)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}

// IsColor reports whether value is a hex (#RGB, #RRGGBB), rgb(r,g,b) or hsl(h,s%,l%) color.
func IsColor(value string) bool {
	return hexColorPattern.MatchString(value) ||
		rgbColorPattern.MatchString(value) ||
		hslColorPattern.MatchString(value)
}

// IsURL reports whether value parses as an absolute URL. Hierarchical URLs with an http(s)
// scheme must also carry a host.
func IsURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != ""
	}

	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

// IsBoolString reports whether value is "true" or "false", ignoring case.
func IsBoolString(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false":
		return true
	}
	return false
}

// IsAssetPath reports whether value is a site-relative path or an http(s) location.
func IsAssetPath(value string) bool {
	return strings.HasPrefix(value, "/") || strings.HasPrefix(value, "http")
}

// IsUUID reports whether value is a canonical hyphenated 8-4-4-4-12 hex UUID.
func IsUUID(value string) bool {
	return uuidPattern.MatchString(value)
}

// ValidateColor returns a FormatError when a non-empty value is not a supported color.
func ValidateColor(value, fieldName string) error {
	return check(value, fieldName, IsColor, ErrInvalidColor)
}

// ValidateURL returns a FormatError when a non-empty value is not an absolute URL.
func ValidateURL(value, fieldName string) error {
	return check(value, fieldName, IsURL, ErrInvalidURL)
}

// ValidateBool returns a FormatError when a non-empty value is not a boolean literal.
func ValidateBool(value, fieldName string) error {
	return check(value, fieldName, IsBoolString, ErrInvalidBool)
}

// ValidateAssetPath returns a FormatError when a non-empty value is not a usable asset location.
func ValidateAssetPath(value, fieldName string) error {
	return check(value, fieldName, IsAssetPath, ErrInvalidAssetPath)
}

// ValidateUUID returns a FormatError when a non-empty value is not a canonical UUID.
func ValidateUUID(value, fieldName string) error {
	return check(value, fieldName, IsUUID, ErrInvalidUUID)
}

// check skips empty values: absence is handled by the required/recommended rules.
func check(value, fieldName string, ok func(string) bool, kind error) error {
	if value == "" || ok(value) {
		return nil
	}
	return &FormatError{Field: fieldName, Value: value, Kind: kind}
}
