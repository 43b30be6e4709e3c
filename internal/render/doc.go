// Package render draws trajectories as static figures.
//
// [Render] and [SaveFile] project a trajectory onto two state components and
// draw it as a single polyline with gonum/plot. The default [Style] matches
// the attractor logo: an 8x6 inch figure at 100 DPI, black background, a cyan
// 0.5pt line, no axes or grid, and a transparent canvas behind the plot.
//
// [Preview] draws the same projection on a braille canvas for terminals.
package render
