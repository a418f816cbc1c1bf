package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/urfave/cli/v3"
)

func newShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the resolved agent configuration",
		Flags: append(sourceFlags(),
			configFlag(),
			&cli.BoolFlag{
				Name:  "site",
				Usage: "Print the derived site metadata as JSON instead",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := loadSource(cmd)
			if err != nil {
				return err
			}
			agent, err := loadAgent(cmd, src)
			if err != nil {
				return err
			}

			if cmd.Bool("site") {
				return writeJSON(cmd.Root().Writer, config.SiteFor(agent, src))
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, agent)
			return err
		},
	}
}
