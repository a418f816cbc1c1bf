package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/envcheck"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	flags := append(sourceFlags(),
		configFlag(),
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Treat malformed optional values as errors",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text or json)",
			Value:   "text",
		},
	)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate the agent environment",
		Flags:   flags,
		Action:  validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}

	// Defaults are not applied, so fields the file leaves out are reported as missing.
	if path := cmd.String(flagConfig); path != "" {
		agent, err := config.DecodeFileWithLookup(path, src.Lookup)
		if err != nil {
			return fmt.Errorf("failed to load agent file %s: %w", path, err)
		}
		src = agent.ToSource()
	}

	validator := envcheck.New(
		envcheck.WithLogHandler(slog.Default().Handler()),
		envcheck.WithStrict(cmd.Bool("strict")),
	)
	result := validator.Validate(src)
	out := cmd.Root().Writer

	switch format := cmd.String("format"); format {
	case "text":
		if err := validator.Report(out, result); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	case "json":
		if err := writeJSON(out, result); err != nil {
			return err
		}
		validator.Log(ctx, result)
	default:
		return fmt.Errorf("unsupported format %q, use text or json", format)
	}

	if !result.IsValid() {
		return cli.Exit(fmt.Sprintf("environment validation failed with %d error(s)", len(result.Errors)), 1)
	}
	return nil
}
