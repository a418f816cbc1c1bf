package theme

import (
	"fmt"
	"slices"
)

// Scale maps shade labels (50 through 900) to color expressions.
type Scale map[int]string

// BaseShade is the label holding the unmodified base color.
const BaseShade = 500

type shadeStep struct {
	label   int
	percent int
	toward  string
}

// shadeSteps lists every shade except the base, with the share of the base color kept in
// the mix.
var shadeSteps = []shadeStep{
	{label: 50, percent: 5, toward: "white"},
	{label: 100, percent: 10, toward: "white"},
	{label: 200, percent: 20, toward: "white"},
	{label: 300, percent: 30, toward: "white"},
	{label: 400, percent: 40, toward: "white"},
	{label: 600, percent: 80, toward: "black"},
	{label: 700, percent: 70, toward: "black"},
	{label: 800, percent: 60, toward: "black"},
	{label: 900, percent: 50, toward: "black"},
}

func mix(base string, percent int, toward string) string {
	return fmt.Sprintf("color-mix(in srgb, %s %d%%, %s)", base, percent, toward)
}

// ColorScale derives the ten-step shade ladder of base as CSS color-mix expressions.
func ColorScale(base string) Scale {
	scale := Scale{BaseShade: base}
	for _, step := range shadeSteps {
		scale[step.label] = mix(base, step.percent, step.toward)
	}
	return scale
}

// Labels returns the shade labels in ascending order.
func (s Scale) Labels() []int {
	labels := make([]int, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}
