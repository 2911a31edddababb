package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
)

// legend swatch geometry, in logical pixels.
const (
	swatchWidth  = 18
	swatchGap    = 5
	entrySpacing = 16
)

// legendBelow draws a horizontal legend centered in the band reserved
// between the plot area and the bottom edge of the image: a short colored
// line per trace followed by its name. Geometry is in logical pixels and
// multiplied by the render scale.
func legendBelow(lf *figure.LineFigure, legend figure.LegendStyle, font figure.FontSpec, width, height int, scale float64) chart.Renderable {
	entries := legendEntries(lf)

	swatch := scaled(swatchWidth, scale)
	gap := scaled(swatchGap, scale)
	spacing := scaled(entrySpacing, scale)

	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		if len(entries) == 0 {
			return
		}

		r.SetFontColor(hexColor(legend.FontColor))
		r.SetFontSize(font.Size)

		total := spacing * (len(entries) - 1)
		widths := make([]int, len(entries))
		textHeight := 0
		for i, e := range entries {
			tb := r.MeasureText(e.name)
			widths[i] = swatch + gap + tb.Width()
			total += widths[i]
			if tb.Height() > textHeight {
				textHeight = tb.Height()
			}
		}

		x := (width - total) / 2
		y := cb.Bottom + (height-cb.Bottom+textHeight)/2

		for i, e := range entries {
			r.SetStrokeColor(hexColor(e.color))
			r.SetStrokeWidth(3 * scale)
			r.MoveTo(x, y-textHeight/2)
			r.LineTo(x+swatch, y-textHeight/2)
			r.Stroke()

			r.SetFontColor(hexColor(legend.FontColor))
			r.Text(e.name, x+swatch+gap, y)

			x += widths[i] + spacing
		}
	}
}

type legendEntry struct {
	name  string
	color string
}

func legendEntries(lf *figure.LineFigure) []legendEntry {
	var entries []legendEntry
	for _, tr := range lf.Traces() {
		if tr.Name() == "" {
			continue
		}
		e := legendEntry{name: tr.Name()}
		switch t := tr.(type) {
		case *figure.LineTrace:
			e.color = t.LineColor()
		case *figure.MarkerTrace:
			e.color = t.MarkerColor()
		}
		entries = append(entries, e)
	}
	return entries
}
