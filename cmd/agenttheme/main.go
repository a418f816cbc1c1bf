package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	logs := &logOutput{}
	return &cli.Command{
		Name:    "agenttheme",
		Version: Version,
		Usage:   "Validate agent front-end environments and derive theme assets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("AGENTTHEME_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text or json)",
				Value:   "text",
				Sources: cli.EnvVars("AGENTTHEME_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Where to write logs (stderr, stdout, file:///path or a path); files are appended to",
				Value:   "stderr",
				Sources: cli.EnvVars("AGENTTHEME_LOG_FILE"),
			},
		},
		Before: logs.setup,
		After:  logs.close,
		Commands: []*cli.Command{
			newValidateCmd(),
			newSummaryCmd(),
			newShowCmd(),
			newCSSCmd(),
			newScaleCmd(),
			newTokensCmd(),
			newInitCmd(),
			newVersionCmd(),
		},
		Suggest: true,
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
