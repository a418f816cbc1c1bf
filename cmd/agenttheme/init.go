package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/atlanticdynamic/agenttheme/internal/logging/writers"
	"github.com/gofrs/uuid/v5"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const defaultExamplePrompts = "What can you do?|How do I get started?"

func newInitCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a .env scaffold with fresh agent and world ids",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Where to write the scaffold (a path, file:///path or stdout)",
				Value:   ".env",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Agent name",
				Value: config.DefaultName,
			},
			&cli.StringFlag{
				Name:  "server-url",
				Usage: "Agent server URL",
				Value: config.DefaultServerURL,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: initAction,
	}
}

func initAction(ctx context.Context, cmd *cli.Command) (err error) {
	output := cmd.String(flagOutput)
	if writers.ParseWriterType(output) == writers.WriterTypeFile && !cmd.Bool("force") {
		if _, statErr := os.Stat(writers.FilePath(output)); statErr == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", output)
		}
	}

	agentID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate agent id: %w", err)
	}
	worldID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate world id: %w", err)
	}

	agent := config.FromSource(envsource.Source{
		config.KeyAgentID:        agentID.String(),
		config.KeyWorldID:        worldID.String(),
		config.KeyServerURL:      cmd.String("server-url"),
		config.KeyAgentName:      cmd.String("name"),
		config.KeyExamplePrompts: defaultExamplePrompts,
	})
	env := agent.ToSource()
	env[config.KeyAppURL] = config.DefaultAppURL

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode scaffold: %w", err)
	}

	w, err := openOutput(cmd, output, writers.Truncate)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if _, err := io.WriteString(w, content+"\n"); err != nil {
		return fmt.Errorf("failed to write scaffold: %w", err)
	}

	slog.Default().Info("Wrote environment scaffold",
		"output", output,
		"agentId", agentID.String(),
		"worldId", worldID.String())
	return nil
}
