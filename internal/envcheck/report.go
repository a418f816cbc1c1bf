package envcheck

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atlanticdynamic/agenttheme/internal/fancy"
)

const (
	reportPrefix  = "[Environment Validation]"
	errorMarker   = "✗"
	warningMarker = "⚠"
	validMarker   = "✓"
)

// Report writes a human readable account of r to w. Error and warning lines carry distinct
// markers; a clean result prints a single confirmation line.
func (v *Validator) Report(w io.Writer, r Result) error {
	var b strings.Builder

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "%s Errors found:\n", reportPrefix)
		for _, msg := range r.Errors {
			fmt.Fprintf(&b, "  %s %s\n", fancy.ErrorText(errorMarker), msg)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "%s Warnings:\n", reportPrefix)
		for _, msg := range r.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", fancy.WarningText(warningMarker), msg)
		}
	}

	if r.IsValid() && len(r.Warnings) == 0 {
		fmt.Fprintf(&b, "%s %s All environment variables are valid\n", reportPrefix, fancy.ValidText(validMarker))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Log emits every entry of r through the validator's logger.
func (v *Validator) Log(ctx context.Context, r Result) {
	for _, msg := range r.Errors {
		v.logger.ErrorContext(ctx, msg)
	}
	for _, msg := range r.Warnings {
		v.logger.WarnContext(ctx, msg)
	}
	v.logger.InfoContext(ctx, "Environment validation finished",
		"valid", r.IsValid(),
		"errors", len(r.Errors),
		"warnings", len(r.Warnings))
}
