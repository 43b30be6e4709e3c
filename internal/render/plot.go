package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/lorenz/internal/dynamo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	ErrEmptyTrajectory    = errors.New("render: empty trajectory")
	ErrUnsupportedFormat  = errors.New("render: unsupported image format")
	ErrProjectionOutRange = errors.New("render: projection index out of range")
	ErrPreviewSize        = errors.New("render: preview needs at least one row and column")
)

var vectorFormats = map[string]bool{
	"svg": true, "pdf": true, "eps": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// Project maps each state to the (s[xi], s[yi]) plane.
func Project(states []dynamo.State, xi, yi int) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(states))
	for i, s := range states {
		if xi >= len(s) || yi >= len(s) || xi < 0 || yi < 0 {
			return nil, fmt.Errorf("%w: state %d has %d components", ErrProjectionOutRange, i, len(s))
		}
		xys[i].X = s[xi]
		xys[i].Y = s[yi]
	}
	return xys, nil
}

// NewPlot builds the figure for states without writing it anywhere.
func NewPlot(states []dynamo.State, style Style) (*plot.Plot, error) {
	if len(states) == 0 {
		return nil, ErrEmptyTrajectory
	}

	xys, err := Project(states, style.XIndex, style.YIndex)
	if err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.LineStyle.Color = style.Line
	line.LineStyle.Width = style.LineWidth

	p := plot.New()
	p.BackgroundColor = style.Background
	p.HideAxes()
	p.X.Padding = style.Margin
	p.Y.Padding = style.Margin
	p.Add(line)

	return p, nil
}

// Render writes the figure for states to w in the given format ("png" or any
// extension gonum/plot can encode).
func Render(w io.Writer, states []dynamo.State, style Style, format string) error {
	p, err := NewPlot(states, style)
	if err != nil {
		return err
	}

	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch {
	case format == "png":
		c := vgimg.NewWith(
			vgimg.UseWH(style.Width, style.Height),
			vgimg.UseDPI(style.DPI),
			vgimg.UseBackgroundColor(style.canvasColor()),
		)
		p.Draw(draw.New(c))
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	case vectorFormats[format]:
		var wt io.WriterTo
		wt, err = p.WriterTo(style.Width, style.Height, format)
		if err == nil {
			_, err = wt.WriteTo(w)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// SaveFile renders states to path, choosing the format from its extension.
// A path without extension is written as PNG.
func SaveFile(path string, states []dynamo.State, style Style) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		format = "png"
	}
	if format != "png" && !vectorFormats[format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Render(f, states, style, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
