package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/atlanticdynamic/agenttheme/internal/fancy"
	"github.com/atlanticdynamic/agenttheme/internal/theme"
	"github.com/urfave/cli/v3"
)

func newScaleCmd() *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "Print the shade scale of a base color",
		ArgsUsage: "<color>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   "Resolve every shade to hex and show a swatch",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the scale as JSON",
			},
		},
		Action: scaleAction,
	}
}

func scaleAction(ctx context.Context, cmd *cli.Command) error {
	base := cmd.Args().First()
	if base == "" {
		return errors.New("a base color is required, for example: scale '#3366ff'")
	}
	out := cmd.Root().Writer

	if !cmd.Bool("preview") {
		scale := theme.ColorScale(base)
		if cmd.Bool("json") {
			return writeJSON(out, scale)
		}
		t := fancy.Tree().Root(fancy.RootStyle.Render("Color scale " + base))
		for _, label := range scale.Labels() {
			t.Child(fancy.KeyValue(fmt.Sprintf("%3d", label), scale[label]))
		}
		_, err := fmt.Fprintln(out, t)
		return err
	}

	resolved, err := theme.ResolveScale(base)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return writeJSON(out, resolved)
	}

	labels := make([]int, 0, len(resolved))
	for label := range resolved {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	t := fancy.Tree().Root(fancy.RootStyle.Render("Color scale " + base))
	for _, label := range labels {
		t.Child(fancy.Swatch(resolved[label], fmt.Sprintf("%3d %s", label, resolved[label])))
	}
	_, err = fmt.Fprintln(out, t)
	return err
}
