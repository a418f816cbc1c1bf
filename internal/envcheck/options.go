package envcheck

import (
	"log/slog"
	"time"
)

// Option represents a functional option for configuring a Validator.
type Option func(*Validator)

// WithLogHandler sets a custom slog handler for the Validator.
func WithLogHandler(handler slog.Handler) Option {
	return func(v *Validator) {
		if handler != nil {
			v.logger = slog.New(handler).WithGroup("envcheck")
		}
	}
}

// WithStrict promotes malformed-value warnings to errors. Missing recommended keys remain
// warnings either way.
func WithStrict(strict bool) Option {
	return func(v *Validator) {
		v.strict = strict
	}
}

// WithClock sets the time source used to stamp summaries.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}
