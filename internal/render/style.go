package render

import (
	"image/color"

	"github.com/san-kum/lorenz/internal/config"
	"gonum.org/v1/plot/vg"
)

type Style struct {
	Background  color.Color
	Line        color.Color
	LineWidth   vg.Length
	Width       vg.Length
	Height      vg.Length
	DPI         int
	Transparent bool
	Margin      vg.Length

	// XIndex and YIndex select the projected state components.
	XIndex, YIndex int
}

func DefaultStyle() Style {
	s, _ := NewStyle(config.DefaultStyle())
	return s
}

// NewStyle converts the configured figure settings into a Style. A named
// theme replaces the configured background and line colors.
func NewStyle(cfg config.StyleConfig) (Style, error) {
	if cfg.Theme != "" {
		t, err := GetTheme(cfg.Theme)
		if err != nil {
			return Style{}, err
		}
		cfg.Background, cfg.Line = t.Background, t.Line
	}
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return Style{}, err
	}
	line, err := ParseColor(cfg.Line)
	if err != nil {
		return Style{}, err
	}
	return Style{
		Background:  bg,
		Line:        line,
		LineWidth:   vg.Points(cfg.LineWidth),
		Width:       vg.Length(cfg.WidthIn) * vg.Inch,
		Height:      vg.Length(cfg.HeightIn) * vg.Inch,
		DPI:         cfg.DPI,
		Transparent: cfg.Transparent,
		Margin:      vg.Points(4),
		XIndex:      0,
		YIndex:      1,
	}, nil
}

// canvasColor is what shows through where the plot paints nothing.
func (s Style) canvasColor() color.Color {
	if s.Transparent {
		return color.Transparent
	}
	return s.Background
}
