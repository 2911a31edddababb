package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/theme"
)

// bareTrace exposes neither a line nor a marker color slot.
type bareTrace struct{ name string }

func (t *bareTrace) Name() string { return t.name }

func lineFigureWithTraces(n int) *figure.LineFigure {
	fig := figure.NewLineFigure()
	for i := 0; i < n; i++ {
		fig.AddLine(fmt.Sprintf("series-%d", i), []float64{0, 1, 2}, []float64{float64(i), 1, 2})
	}
	return fig
}

func TestApply_ReturnsSameHandle(t *testing.T) {
	fig := lineFigureWithTraces(1)

	got := Apply(fig, "title")

	assert.Same(t, fig, got)
}

func TestApply_LayoutFromDescriptor(t *testing.T) {
	d := theme.Descriptor()
	fig := lineFigureWithTraces(1)

	Apply(fig, "Commits by Month")
	lay := fig.Layout()

	assert.Equal(t, d.Background, lay.PaperBackground)
	assert.Equal(t, d.Surface, lay.PlotBackground)
	assert.Equal(t, figure.FontSpec{Family: d.FontFamily, Size: d.FontSize, Color: d.Foreground}, lay.Font)

	assert.Equal(t, "Commits by Month", lay.Title)
	assert.Equal(t, figure.FontSpec{Family: d.FontFamily, Size: d.TitleSize, Color: d.Foreground}, lay.TitleFont)

	for _, axis := range []figure.AxisStyle{lay.XAxis, lay.YAxis} {
		assert.Equal(t, d.Axis.GridColor, axis.GridColor)
		assert.Equal(t, d.Axis.GridWidth, axis.GridWidth)
		assert.Equal(t, d.Axis.LineColor, axis.LineColor)
		assert.Equal(t, d.Axis.LineWidth, axis.LineWidth)
		assert.Equal(t, d.Axis.TickColor, axis.TickColor)
		assert.Equal(t, d.Axis.LabelColor, axis.LabelColor)
		assert.Equal(t, d.Axis.ZeroLineColor, axis.ZeroLineColor)
		assert.Equal(t, d.Axis.ZeroLineWidth, axis.ZeroLineWidth)
	}
}

func TestApply_EmptyTitleAllowed(t *testing.T) {
	fig := lineFigureWithTraces(1)

	Apply(fig, "")

	assert.Empty(t, fig.Layout().Title)
}

func TestApply_LegendBelowPlotCentered(t *testing.T) {
	fig := lineFigureWithTraces(2)

	Apply(fig, "title")
	legend := fig.Layout().Legend

	assert.Equal(t, figure.LegendHorizontal, legend.Orientation)
	assert.Equal(t, figure.AnchorBottom, legend.YAnchor)
	assert.Equal(t, figure.AnchorCenter, legend.XAnchor)
	assert.Equal(t, theme.Descriptor().Surface, legend.Background)
	assert.Equal(t, theme.Descriptor().Border, legend.Border)
	assert.Equal(t, theme.Descriptor().Foreground, legend.FontColor)
}

func TestApply_AccentAssignment(t *testing.T) {
	paletteLen := len(theme.AccentPalette)

	cases := []struct {
		name   string
		traces int
	}{
		{"fewer traces than palette", 3},
		{"exactly palette length", paletteLen},
		{"more traces than palette", paletteLen*2 + 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fig := lineFigureWithTraces(tc.traces)

			Apply(fig, "title")

			for i, tr := range fig.Traces() {
				line := tr.(*figure.LineTrace)
				assert.Equal(t, theme.AccentPalette[i%paletteLen], line.LineColor(),
					"trace %d must receive palette[%d mod %d]", i, i, paletteLen)
			}
		})
	}
}

func TestApply_Repeatable(t *testing.T) {
	first := lineFigureWithTraces(5)
	second := lineFigureWithTraces(5)

	Apply(first, "title")
	Apply(second, "title")

	for i := range first.Traces() {
		a := first.Traces()[i].(*figure.LineTrace)
		b := second.Traces()[i].(*figure.LineTrace)
		assert.Equal(t, a.LineColor(), b.LineColor())
	}
}

func TestApply_MarkerFallback(t *testing.T) {
	fig := figure.NewLineFigure()
	fig.AddLine("lines", []float64{0, 1}, []float64{1, 2})
	marker := figure.NewMarkerTrace("markers", []float64{0, 1}, []float64{2, 3})
	fig.Add(marker)

	Apply(fig, "title")

	assert.Equal(t, theme.AccentColor(1), marker.MarkerColor(),
		"traces without a line slot receive the accent color on the marker slot")
}

func TestApply_SkipsTracesWithoutColorSlots(t *testing.T) {
	fig := figure.NewLineFigure()
	fig.Add(&bareTrace{name: "annotation"})
	line := fig.AddLine("data", []float64{0, 1}, []float64{1, 2})

	require.NotPanics(t, func() { Apply(fig, "title") })

	// Index-based assignment still counts the unstyled trace.
	assert.Equal(t, theme.AccentColor(1), line.LineColor())
}

func TestApply_DoesNotTouchSeriesData(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{-1.5, 0, 1.5, 3}
	xBefore := append([]float64(nil), x...)
	yBefore := append([]float64(nil), y...)

	fig := figure.NewLineFigure()
	line := fig.AddLine("data", x, y)

	Apply(fig, "title")

	assert.Equal(t, xBefore, line.X)
	assert.Equal(t, yBefore, line.Y)
}
