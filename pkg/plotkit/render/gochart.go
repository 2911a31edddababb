package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
)

// legendReserve is the vertical space, in logical pixels, kept below the
// plot area for the horizontal legend.
const legendReserve = 34

// ChartEngine rasterizes line figures to PNG files using go-chart. The
// figure's layout colors and fonts map onto the chart styles; text is drawn
// with go-chart's bundled font regardless of the layout's font family.
type ChartEngine struct{}

// NewChartEngine returns a go-chart backed PNG engine.
func NewChartEngine() *ChartEngine {
	return &ChartEngine{}
}

// Render converts the figure to a PNG at p.PixelWidth by p.PixelHeight and
// writes it to path. Figures other than *figure.LineFigure fail with
// ErrUnsupportedFigure.
func (e *ChartEngine) Render(fig figure.Figure, path string, p Params) error {
	lf, ok := fig.(*figure.LineFigure)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedFigure, fig)
	}

	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}

	graph, err := buildChart(lf, p, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func buildChart(lf *figure.LineFigure, p Params, scale float64) (*chart.Chart, error) {
	lay := lf.Layout()

	series, err := buildSeries(lf, scale)
	if err != nil {
		return nil, err
	}

	pad := func(logical int) int { return scaled(logical, scale) }

	padding := chart.Box{
		Top:    pad(5),
		Left:   pad(5),
		Right:  pad(5),
		Bottom: pad(5),
		IsSet:  true,
	}
	if lay.Legend.Orientation == figure.LegendHorizontal && lay.Legend.YAnchor == figure.AnchorBottom {
		padding.Bottom = pad(legendReserve)
	}

	graph := &chart.Chart{
		Title: lay.Title,
		TitleStyle: chart.Style{
			FontColor: hexColor(lay.TitleFont.Color),
			FontSize:  lay.TitleFont.Size,
		},
		Width:  p.PixelWidth(),
		Height: p.PixelHeight(),
		// Scaling the DPI alongside the pixel dimensions keeps the logical
		// layout identical across scale factors.
		DPI: chart.DefaultDPI * scale,
		Background: chart.Style{
			FillColor: hexColor(lay.PaperBackground),
			Padding:   padding,
		},
		Canvas: chart.Style{
			FillColor: hexColor(lay.PlotBackground),
		},
		XAxis: chart.XAxis{
			Name:           lay.XAxisTitle,
			NameStyle:      labelStyle(lay.XAxis, lay.Font),
			Style:          axisLineStyle(lay.XAxis, lay.Font, scale),
			TickStyle:      tickStyle(lay.XAxis, lay.Font),
			GridMajorStyle: gridStyle(lay.XAxis, scale),
			GridMinorStyle: gridStyle(lay.XAxis, scale),
		},
		YAxis: chart.YAxis{
			Name:           lay.YAxisTitle,
			NameStyle:      labelStyle(lay.YAxis, lay.Font),
			Style:          axisLineStyle(lay.YAxis, lay.Font, scale),
			TickStyle:      tickStyle(lay.YAxis, lay.Font),
			GridMajorStyle: gridStyle(lay.YAxis, scale),
			GridMinorStyle: gridStyle(lay.YAxis, scale),
			Zero: chart.GridLine{
				Style: chart.Style{
					StrokeColor: hexColor(lay.YAxis.ZeroLineColor),
					StrokeWidth: lay.YAxis.ZeroLineWidth * scale,
				},
			},
		},
		Series: series,
	}

	if lay.Legend.Orientation == figure.LegendHorizontal && lay.Legend.YAnchor == figure.AnchorBottom {
		graph.Elements = []chart.Renderable{legendBelow(lf, lay.Legend, lay.Font, graph.Width, graph.Height, scale)}
	}

	return graph, nil
}

func buildSeries(lf *figure.LineFigure, scale float64) ([]chart.Series, error) {
	var series []chart.Series
	for _, tr := range lf.Traces() {
		switch t := tr.(type) {
		case *figure.LineTrace:
			series = append(series, chart.ContinuousSeries{
				Name:    t.Name(),
				XValues: t.X,
				YValues: t.Y,
				Style: chart.Style{
					StrokeColor: hexColor(t.LineColor()),
					StrokeWidth: 2 * scale,
				},
			})
		case *figure.MarkerTrace:
			series = append(series, chart.ContinuousSeries{
				Name:    t.Name(),
				XValues: t.X,
				YValues: t.Y,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    hexColor(t.MarkerColor()),
					DotWidth:    4 * scale,
				},
			})
		default:
			return nil, fmt.Errorf("%w: trace %T", ErrUnsupportedFigure, tr)
		}
	}
	return series, nil
}

func axisLineStyle(a figure.AxisStyle, font figure.FontSpec, scale float64) chart.Style {
	return chart.Style{
		StrokeColor: hexColor(a.LineColor),
		StrokeWidth: a.LineWidth * scale,
		FontColor:   hexColor(a.LabelColor),
		FontSize:    font.Size,
	}
}

func tickStyle(a figure.AxisStyle, font figure.FontSpec) chart.Style {
	return chart.Style{
		StrokeColor: hexColor(a.TickColor),
		FontColor:   hexColor(a.LabelColor),
		FontSize:    font.Size,
	}
}

func labelStyle(a figure.AxisStyle, font figure.FontSpec) chart.Style {
	return chart.Style{
		FontColor: hexColor(a.LabelColor),
		FontSize:  font.Size,
	}
}

func gridStyle(a figure.AxisStyle, scale float64) chart.Style {
	return chart.Style{
		StrokeColor: hexColor(a.GridColor),
		StrokeWidth: a.GridWidth * scale,
	}
}

// hexColor parses a "#rrggbb" literal into a drawing color. Empty input
// maps to the zero (transparent) color so unstyled slots keep go-chart's
// own defaults.
func hexColor(hex string) drawing.Color {
	if hex == "" {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
