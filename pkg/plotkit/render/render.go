// Package render defines the rasterization contract consumed by the
// exporter and provides the go-chart based PNG engine that fulfills it.
package render

import (
	"errors"
	"math"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
)

// ErrUnsupportedFigure is returned when an engine is handed a figure type
// it cannot rasterize.
var ErrUnsupportedFigure = errors.New("unsupported figure type")

// Engine converts a figure into PNG bytes written to a file. Implementations
// must render at Params.PixelWidth by Params.PixelHeight and fail with a
// descriptive error when the figure cannot be converted; they never write a
// fallback image.
type Engine interface {
	Render(fig figure.Figure, path string, p Params) error
}

// Params carries the resolution request for a single render: logical
// dimensions in pixels plus a scale multiplier for higher pixel density.
type Params struct {
	Width  int
	Height int
	Scale  float64
}

// PixelWidth returns the rendered image width: Width scaled by Scale.
func (p Params) PixelWidth() int {
	return scaled(p.Width, p.Scale)
}

// PixelHeight returns the rendered image height: Height scaled by Scale.
func (p Params) PixelHeight() int {
	return scaled(p.Height, p.Scale)
}

func scaled(dim int, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(dim) * scale))
}
