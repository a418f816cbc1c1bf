package main

import (
	"context"

	"github.com/atlanticdynamic/agenttheme/internal/logging/writers"
	"github.com/atlanticdynamic/agenttheme/internal/theme"
	"github.com/urfave/cli/v3"
)

func newTokensCmd() *cli.Command {
	return &cli.Command{
		Name:  "tokens",
		Usage: "Print the Tailwind design tokens as JSON",
		Flags: []cli.Flag{outputFlag("Where to write the tokens")},
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			w, err := openOutput(cmd, cmd.String(flagOutput), writers.Truncate)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := w.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			return writeJSON(w, theme.TailwindTokens())
		},
	}
}
