package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.Color{
	"black":       color.Black,
	"white":       color.White,
	"transparent": color.Transparent,
	"cyan":        color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	"magenta":     color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	"red":         color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"green":       color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"blue":        color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"yellow":      color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"orange":      color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"purple":      color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff},
}

// ParseColor accepts a color name or a #rgb / #rrggbb hex string.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("invalid color %q", s)
}

// hexOf formats c as #rrggbb, dropping alpha.
func hexOf(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
