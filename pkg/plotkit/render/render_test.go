package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
)

func TestParams_PixelDimensions(t *testing.T) {
	cases := []struct {
		name       string
		params     Params
		wantWidth  int
		wantHeight int
	}{
		{"unit scale", Params{Width: 1200, Height: 800, Scale: 1.0}, 1200, 800},
		{"double scale", Params{Width: 1200, Height: 800, Scale: 2.0}, 2400, 1600},
		{"fractional scale", Params{Width: 1600, Height: 1000, Scale: 2.5}, 4000, 2500},
		{"rounding", Params{Width: 100, Height: 100, Scale: 1.005}, 101, 101},
		{"zero scale treated as one", Params{Width: 1200, Height: 800}, 1200, 800},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantWidth, tc.params.PixelWidth())
			assert.Equal(t, tc.wantHeight, tc.params.PixelHeight())
		})
	}
}

func TestHexColor(t *testing.T) {
	want := drawing.Color{R: 0xd9, G: 0x77, B: 0x06, A: 255}

	assert.Equal(t, want, hexColor("#d97706"))
	assert.Equal(t, want, hexColor("d97706"), "a missing hash prefix is tolerated")
	assert.Equal(t, drawing.Color{}, hexColor(""), "empty input keeps the zero color")
}

type opaqueFigure struct{}

func (opaqueFigure) Layout() *figure.Layout { return &figure.Layout{} }
func (opaqueFigure) Traces() []figure.Trace { return nil }

func TestChartEngine_RejectsUnknownFigures(t *testing.T) {
	engine := NewChartEngine()

	err := engine.Render(opaqueFigure{}, filepath.Join(t.TempDir(), "x.png"), Params{Width: 100, Height: 100, Scale: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFigure)
}

type bareTrace struct{}

func (bareTrace) Name() string { return "bare" }

func TestChartEngine_RejectsUnknownTraces(t *testing.T) {
	fig := figure.NewLineFigure()
	fig.Add(bareTrace{})

	err := NewChartEngine().Render(fig, filepath.Join(t.TempDir(), "x.png"), Params{Width: 100, Height: 100, Scale: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFigure)
}

func TestChartEngine_WritesPNG(t *testing.T) {
	fig := figure.NewLineFigure()
	fig.AddLine("y1", []float64{0, 1, 2, 3}, []float64{1, 3, 2, 4}).SetLineColor("#d97706")
	fig.AddLine("y2", []float64{0, 1, 2, 3}, []float64{4, 2, 3, 1}).SetLineColor("#0891b2")
	lay := fig.Layout()
	lay.Title = "test"
	lay.PaperBackground = "#ffffff"
	lay.PlotBackground = "#ffffff"
	lay.Font = figure.FontSpec{Size: 10, Color: "#252525"}
	lay.TitleFont = figure.FontSpec{Size: 24, Color: "#252525"}

	path := filepath.Join(t.TempDir(), "test.png")
	err := NewChartEngine().Render(fig, path, Params{Width: 400, Height: 300, Scale: 1})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// PNG signature
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
}

func TestChartEngine_PropagatesCreateError(t *testing.T) {
	fig := figure.NewLineFigure()
	fig.AddLine("y", []float64{0, 1}, []float64{0, 1})

	err := NewChartEngine().Render(fig, filepath.Join(t.TempDir(), "missing", "x.png"), Params{Width: 100, Height: 100, Scale: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
