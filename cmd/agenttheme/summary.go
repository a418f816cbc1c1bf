package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/agenttheme/internal/envcheck"
	"github.com/urfave/cli/v3"
)

func newSummaryCmd() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show the agent-related part of the environment",
		Flags: append(sourceFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "Print the summary as JSON",
		}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := loadSource(cmd)
			if err != nil {
				return err
			}

			summary := envcheck.New().Summary(src)
			if cmd.Bool("json") {
				return writeJSON(cmd.Root().Writer, summary)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, summary)
			return err
		},
	}
}
