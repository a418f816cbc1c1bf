package envcheck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvironment is returned by Result.Err when at least one error was recorded.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Result is the outcome of one validation run. Errors and Warnings keep the order in which the
// checks ran.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// IsValid reports whether no errors were recorded. Warnings never affect validity.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a valid result, otherwise ErrInvalidEnvironment listing every error.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidEnvironment, strings.Join(r.Errors, "; "))
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *Result) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
