package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/logging/writers"
	"github.com/atlanticdynamic/agenttheme/internal/theme"
	"github.com/urfave/cli/v3"
)

func newCSSCmd() *cli.Command {
	return &cli.Command{
		Name:  "css",
		Usage: "Generate the theme stylesheet",
		Flags: append(sourceFlags(),
			configFlag(),
			outputFlag("Where to write the stylesheet"),
			&cli.BoolFlag{
				Name:  "root-only",
				Usage: "Emit only the :root variable block",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Emit an HTML head fragment for server rendering",
			},
		),
		Action: cssAction,
	}
}

func cssAction(ctx context.Context, cmd *cli.Command) (err error) {
	if cmd.Bool("root-only") && cmd.Bool("html") {
		return errors.New("--root-only and --html cannot be combined")
	}

	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	agent, err := loadAgent(cmd, src)
	if err != nil {
		return err
	}

	w, err := openOutput(cmd, cmd.String(flagOutput), writers.Truncate)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	logger := slog.Default().With("component", "theme")
	configCallback := func() *config.Agent { return agent }

	switch {
	case cmd.Bool("root-only"):
		_, err = io.WriteString(w, theme.RootCSS(agent))
		return err
	case cmd.Bool("html"):
		sink := theme.NewSSR(config.SiteFor(agent, src))
		if err := applyTheme(sink, configCallback, logger); err != nil {
			return err
		}
		if err := sink.Render(w); err != nil {
			return err
		}
		logger.Info("Rendered head fragment", "htmlClass", sink.HTMLClass())
		return nil
	default:
		doc := theme.NewDocument()
		if err := applyTheme(doc, configCallback, logger); err != nil {
			return err
		}
		css, _ := doc.StyleText(theme.StyleElementID)
		_, err = io.WriteString(w, css)
		return err
	}
}

func applyTheme(sink theme.Sink, configCallback func() *config.Agent, logger *slog.Logger) error {
	manager, err := theme.NewManager(sink,
		theme.WithConfigCallback(configCallback),
		theme.WithLogHandler(logger.Handler()),
	)
	if err != nil {
		return err
	}
	if err := manager.Initialize(); err != nil {
		return fmt.Errorf("failed to apply theme: %w", err)
	}
	return nil
}
