// Package interpolation expands ${VAR} and ${VAR:default} references inside configuration values.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVariable is returned for a ${VAR} reference with no value and no default.
var ErrUndefinedVariable = errors.New("environment variable not defined")

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc resolves a variable name. It has the same contract as os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Expand replaces every ${VAR_NAME} or ${VAR_NAME:default_value} in input using lookup.
//
// A defined variable always wins, even when empty. Otherwise the default is used when a colon
// is present (so ${VAR:} expands to ""). A reference with neither is left in place and
// reported; all missing variables are joined into the returned error.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missingVars []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		submatches := envVarWithDefaultPattern.FindStringSubmatch(match)
		varName := submatches[1]
		colonIsPresent := submatches[2] == ":"
		defaultValue := submatches[3]

		if value, exists := lookup(varName); exists {
			return value
		}
		if colonIsPresent {
			return defaultValue
		}

		missingVars = append(missingVars, fmt.Errorf("%w: %s", ErrUndefinedVariable, varName))
		return match
	})

	return result, errors.Join(missingVars...)
}
