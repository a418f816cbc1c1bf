// Package envcheck validates the flat NEXT_PUBLIC_* environment of an agent front-end.
//
// Validation never fails with a Go error: every problem becomes either an error entry, which
// makes the result invalid, or a warning entry, which is informational. The caller decides
// whether an invalid result should stop startup.
package envcheck

import (
	"log/slog"
	"time"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/config/validation"
	"github.com/atlanticdynamic/agenttheme/internal/envsource"
)

// RequiredKeys must be present and non-empty.
var RequiredKeys = []string{
	config.KeyAgentID,
	config.KeyServerURL,
	config.KeyWorldID,
}

// RecommendedKeys produce a warning when missing.
var RecommendedKeys = []string{
	config.KeyAgentName,
	config.KeyAgentDescription,
	config.KeyPrimaryColor,
	config.KeyExamplePrompts,
}

type severity int

const (
	severityError severity = iota
	severityWarning
)

type formatCheck struct {
	key      string
	validate func(value, fieldName string) error
	severity severity
}

// formatChecks run in order after the presence checks; each only looks at a non-empty value.
var formatChecks = buildFormatChecks()

func buildFormatChecks() []formatCheck {
	checks := []formatCheck{
		{key: config.KeyPrimaryColor, validate: validation.ValidateColor, severity: severityError},
		{key: config.KeySecondaryColor, validate: validation.ValidateColor, severity: severityWarning},
		{key: config.KeyAccentColor, validate: validation.ValidateColor, severity: severityWarning},

		{key: config.KeyAppURL, validate: validation.ValidateURL, severity: severityWarning},
		{key: config.KeyServerURL, validate: validation.ValidateURL, severity: severityError},
		{key: config.KeyAgentWebsiteURL, validate: validation.ValidateURL, severity: severityWarning},
		{key: config.KeyAgentDiscordServer, validate: validation.ValidateURL, severity: severityWarning},
	}

	for _, key := range config.FeatureKeys {
		checks = append(checks, formatCheck{key: key, validate: validation.ValidateBool, severity: severityWarning})
	}

	return append(checks,
		formatCheck{key: config.KeyAgentLogo, validate: validation.ValidateAssetPath, severity: severityWarning},
		formatCheck{key: config.KeyAgentBannerLogo, validate: validation.ValidateAssetPath, severity: severityWarning},

		formatCheck{key: config.KeyAgentID, validate: validation.ValidateUUID, severity: severityError},
		formatCheck{key: config.KeyWorldID, validate: validation.ValidateUUID, severity: severityError},
	)
}

// Validator checks an environment source. It holds no per-call state and can be shared.
type Validator struct {
	logger *slog.Logger
	strict bool
	now    func() time.Time
}

// New creates a Validator with the observed lenient policy unless WithStrict is given.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.Default().WithGroup("envcheck"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check against src and returns a fresh result.
func (v *Validator) Validate(src envsource.Source) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}

	for _, key := range RequiredKeys {
		if !src.Present(key) {
			result.addError("Missing required environment variable: " + key)
		}
	}

	for _, key := range RecommendedKeys {
		if !src.Present(key) {
			result.addWarning("Recommended environment variable missing: " + key)
		}
	}

	for _, check := range formatChecks {
		err := check.validate(src.Get(check.key), check.key)
		if err == nil {
			continue
		}
		if check.severity == severityError || v.strict {
			result.addError(err.Error())
		} else {
			result.addWarning(err.Error())
		}
	}

	return result
}
