// Package style applies the design-system theme to chart figures: layout
// colors and fonts, deterministic accent colors per trace, and legend
// placement.
package style

import (
	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/theme"
)

// Apply styles the figure in place and returns the same handle. The layout
// receives every field of the style descriptor, the title is set with the
// descriptor's title font, each trace gets an accent color by its index
// (cycling through the palette), and the legend is configured to render
// horizontally, centered below the plot.
//
// The result depends only on the descriptor, the palette, and the trace
// order; trace data is never read or modified.
func Apply(fig figure.Figure, title string) figure.Figure {
	d := theme.Descriptor()
	lay := fig.Layout()

	lay.PaperBackground = d.Background
	lay.PlotBackground = d.Surface
	lay.Font = figure.FontSpec{
		Family: d.FontFamily,
		Size:   d.FontSize,
		Color:  d.Foreground,
	}

	lay.Title = title
	lay.TitleFont = figure.FontSpec{
		Family: d.FontFamily,
		Size:   d.TitleSize,
		Color:  d.Foreground,
	}

	axis := axisStyle(d.Axis)
	lay.XAxis = axis
	lay.YAxis = axis

	lay.Legend = figure.LegendStyle{
		Background:  d.Surface,
		Border:      d.Border,
		FontColor:   d.Foreground,
		Orientation: figure.LegendHorizontal,
		XAnchor:     figure.AnchorCenter,
		YAnchor:     figure.AnchorBottom,
	}

	for i, tr := range fig.Traces() {
		assignAccent(tr, theme.AccentColor(i))
	}

	return fig
}

// assignAccent writes the color into the trace's line slot when present,
// falling back to the marker slot. Traces with neither slot are left
// unstyled.
func assignAccent(tr figure.Trace, hex string) {
	switch t := tr.(type) {
	case figure.LineColorSetter:
		t.SetLineColor(hex)
	case figure.MarkerColorSetter:
		t.SetMarkerColor(hex)
	}
}

func axisStyle(a theme.AxisStyle) figure.AxisStyle {
	return figure.AxisStyle{
		GridColor:     a.GridColor,
		GridWidth:     a.GridWidth,
		LineColor:     a.LineColor,
		LineWidth:     a.LineWidth,
		TickColor:     a.TickColor,
		LabelColor:    a.LabelColor,
		ZeroLineColor: a.ZeroLineColor,
		ZeroLineWidth: a.ZeroLineWidth,
	}
}
