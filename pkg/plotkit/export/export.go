// Package export writes chart figures to PNG files. It owns filename
// normalization, destination directory creation, and the resolution/scale
// parameterization handed to the rendering engine; the engine does the
// actual pixel work.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/render"
)

// Documented defaults. Zero-valued Options fields resolve to these.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800

	// DefaultScale is the scale multiplier of the standard-resolution tier.
	DefaultScale = 1.0
	// DefaultHighQualityScale is the scale multiplier of the print/high-DPI
	// tier: 2x pixel density at the same logical layout.
	DefaultHighQualityScale = 2.0
)

// Options parameterizes a single export. Zero or negative fields fall back
// to the documented defaults; the default scale depends on the quality tier
// the export was requested through.
type Options struct {
	Width  int     // logical width in pixels (default 1200)
	Height int     // logical height in pixels (default 800)
	Scale  float64 // pixel density multiplier (default 1.0, or 2.0 for the high-quality tier)
}

func (o Options) withDefaults(defaultScale float64) render.Params {
	p := render.Params{Width: o.Width, Height: o.Height, Scale: o.Scale}
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Scale <= 0 {
		p.Scale = defaultScale
	}
	return p
}

// Exporter writes figures to PNG files through a rendering engine. It holds
// no cross-call state; concurrent use is safe as long as each call operates
// on its own figure.
type Exporter struct {
	engine render.Engine
	logger *slog.Logger
}

// New returns an exporter backed by the given engine.
func New(engine render.Engine) *Exporter {
	return &Exporter{
		engine: engine,
		logger: slog.Default(),
	}
}

// Export writes the figure as a PNG at standard resolution (default scale
// 1.0). The filename may omit the .png extension and may contain directory
// components; missing directories are created. Returns the resolved path of
// the written file.
func (e *Exporter) Export(fig figure.Figure, filename string, opts Options) (string, error) {
	return e.export(fig, filename, opts.withDefaults(DefaultScale))
}

// ExportHighQuality writes the figure as a PNG tuned for print/high-DPI use
// (default scale 2.0). Behavior is otherwise identical to Export.
func (e *Exporter) ExportHighQuality(fig figure.Figure, filename string, opts Options) (string, error) {
	return e.export(fig, filename, opts.withDefaults(DefaultHighQualityScale))
}

func (e *Exporter) export(fig figure.Figure, filename string, p render.Params) (string, error) {
	path := normalizeFilename(filename)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := e.engine.Render(fig, path, p); err != nil {
		return "", err
	}

	e.logger.Debug("exported figure",
		"path", path,
		"width", p.PixelWidth(),
		"height", p.PixelHeight(),
		"scale", p.Scale)

	return path, nil
}

// normalizeFilename appends the .png extension when missing.
func normalizeFilename(filename string) string {
	if strings.HasSuffix(filename, ".png") {
		return filename
	}
	return filename + ".png"
}

// defaultExporter backs the package-level convenience functions.
var defaultExporter = New(render.NewChartEngine())

// Export writes the figure as a standard-resolution PNG using the go-chart
// engine. See Exporter.Export.
func Export(fig figure.Figure, filename string, opts Options) (string, error) {
	return defaultExporter.Export(fig, filename, opts)
}

// ExportHighQuality writes the figure as a high-DPI PNG using the go-chart
// engine. See Exporter.ExportHighQuality.
func ExportHighQuality(fig figure.Figure, filename string, opts Options) (string, error) {
	return defaultExporter.ExportHighQuality(fig, filename, opts)
}
