package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/agenttheme/internal/config/validation"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbComponents = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hslComponents = regexp.MustCompile(`^hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)

	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// ParseColor converts a hex, rgb() or hsl() color string into a color value.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !validation.IsColor(s) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
	}

	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %w", ErrUnsupportedColor, err)
		}
		return c, nil
	case strings.HasPrefix(s, "rgb"):
		m := rgbComponents.FindStringSubmatch(s)
		return colorful.Color{
			R: channel(m[1], 255),
			G: channel(m[2], 255),
			B: channel(m[3], 255),
		}, nil
	default:
		m := hslComponents.FindStringSubmatch(s)
		h, _ := strconv.ParseFloat(m[1], 64)
		return colorful.Hsl(h, channel(m[2], 100), channel(m[3], 100)), nil
	}
}

// channel parses a decimal component and scales it into [0, 1].
func channel(digits string, limit float64) float64 {
	v, _ := strconv.ParseFloat(digits, 64)
	return min(v, limit) / limit
}

// ResolveScale evaluates the shade ladder of base to hex colors, mixing in sRGB the way
// color-mix does.
func ResolveScale(base string) (map[int]string, error) {
	c, err := ParseColor(base)
	if err != nil {
		return nil, err
	}

	resolved := map[int]string{BaseShade: c.Clamped().Hex()}
	for _, step := range shadeSteps {
		target := white
		if step.toward == "black" {
			target = black
		}
		keep := float64(step.percent) / 100
		resolved[step.label] = c.BlendRgb(target, 1-keep).Clamped().Hex()
	}
	return resolved, nil
}
