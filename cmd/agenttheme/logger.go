package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atlanticdynamic/agenttheme/internal/logging"
	"github.com/atlanticdynamic/agenttheme/internal/logging/writers"
	"github.com/urfave/cli/v3"
)

// logOutput owns the destination opened for --log-file until the app finishes.
type logOutput struct {
	closer io.Closer
}

// setup installs the default logger from the root --log-level, --log-format and --log-file
// flags. Logs go to the error writer unless --log-file names a file, which is appended to.
func (l *logOutput) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format, err := logging.ParseFormat(cmd.String("log-format"))
	if err != nil {
		return ctx, err
	}

	w, err := openOutput(cmd, cmd.String("log-file"), writers.Append)
	if err != nil {
		return ctx, fmt.Errorf("failed to open log file: %w", err)
	}
	l.closer = w

	logging.SetupLogger(cmd.String("log-level"), format, w)
	return ctx, nil
}

func (l *logOutput) close(ctx context.Context, cmd *cli.Command) error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
