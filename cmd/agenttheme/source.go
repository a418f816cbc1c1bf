package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/atlanticdynamic/agenttheme/internal/logging/writers"
	"github.com/urfave/cli/v3"
)

const (
	flagEnvFile      = "env-file"
	flagNoProcessEnv = "no-process-env"
	flagConfig       = "config"
	flagOutput       = "output"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    flagEnvFile,
			Aliases: []string{"e"},
			Usage:   "Load variables from a .env file; repeat to layer files, later files win",
		},
		&cli.BoolFlag{
			Name:  flagNoProcessEnv,
			Usage: "Ignore the process environment and read only --env-file files",
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "Path to a TOML agent file; ${VAR:default} references resolve against the environment",
	}
}

func outputFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   usage + " (stdout, stderr, file:///path or a path)",
		Value:   "stdout",
	}
}

// loadSource layers the --env-file files under the process environment, which wins on
// conflicts the same way the front-end build does.
func loadSource(cmd *cli.Command) (envsource.Source, error) {
	files, err := envsource.FromDotenv(cmd.StringSlice(flagEnvFile)...)
	if err != nil {
		return nil, err
	}
	if cmd.Bool(flagNoProcessEnv) {
		return files, nil
	}
	return envsource.Overlay(files, envsource.FromProcess()), nil
}

// loadAgent builds the agent from --config when given, otherwise from src.
func loadAgent(cmd *cli.Command, src envsource.Source) (*config.Agent, error) {
	path := cmd.String(flagConfig)
	if path == "" {
		return config.FromSource(src), nil
	}

	agent, err := config.NewFromFileWithLookup(path, src.Lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent file %s: %w", path, err)
	}
	return agent, nil
}

// openOutput resolves output against the root command's writers. Only file destinations are
// opened, and closing a standard stream does nothing.
func openOutput(cmd *cli.Command, output string, mode writers.Mode) (io.WriteCloser, error) {
	switch writers.ParseWriterType(output) {
	case writers.WriterTypeStdout:
		return writers.NopCloser(cmd.Root().Writer), nil
	case writers.WriterTypeStderr:
		return writers.NopCloser(cmd.Root().ErrWriter), nil
	default:
		return writers.CreateWriter(output, mode)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
