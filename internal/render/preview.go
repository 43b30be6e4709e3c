package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/dynamo"
)

// Preview draws the (XIndex, YIndex) projection of states as braille text
// cols characters wide and rows lines high, colored with the style's line color.
func Preview(states []dynamo.State, style Style, cols, rows int) (string, error) {
	if len(states) == 0 {
		return "", ErrEmptyTrajectory
	}
	if cols < 1 || rows < 1 {
		return "", fmt.Errorf("%w: got %dx%d", ErrPreviewSize, cols, rows)
	}
	xys, err := Project(states, style.XIndex, style.YIndex)
	if err != nil {
		return "", err
	}

	c := NewCanvas(cols, rows)
	b := analysis.BoundsOf(states)
	minX, maxX := b.Min[style.XIndex], b.Max[style.XIndex]
	minY, maxY := b.Min[style.YIndex], b.Max[style.YIndex]
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	toDot := func(x, y float64) (int, int) {
		px := int((x - minX) / spanX * float64(c.DotsWide()-1))
		py := c.DotsHigh() - 1 - int((y-minY)/spanY*float64(c.DotsHigh()-1))
		return px, py
	}

	// Non-finite points break the polyline.
	var px, py int
	pen := false
	for _, p := range xys {
		if !finite(p.X) || !finite(p.Y) {
			pen = false
			continue
		}
		nx, ny := toDot(p.X, p.Y)
		if pen {
			c.Line(px, py, nx, ny)
		} else {
			c.Dot(nx, ny)
		}
		px, py, pen = nx, ny, true
	}

	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(style.Line)))
	return st.Render(c.String()), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
