package figure

// LineFigure is an in-memory line/scatter chart: an ordered set of traces
// plus a mutable layout. It is the concrete figure type rendered by the
// go-chart engine.
type LineFigure struct {
	layout Layout
	traces []Trace
}

// NewLineFigure returns an empty line figure with a zero layout.
func NewLineFigure() *LineFigure {
	return &LineFigure{}
}

// Layout returns the figure's mutable layout.
func (f *LineFigure) Layout() *Layout {
	return &f.layout
}

// Traces returns the figure's traces in insertion order.
func (f *LineFigure) Traces() []Trace {
	return f.traces
}

// Add appends a trace. Traces keep their insertion order; the styler
// assigns accent colors by that order.
func (f *LineFigure) Add(t Trace) {
	f.traces = append(f.traces, t)
}

// AddLine appends a new line trace and returns it.
func (f *LineFigure) AddLine(name string, x, y []float64) *LineTrace {
	t := NewLineTrace(name, x, y)
	f.Add(t)
	return t
}

// LineTrace is a series drawn as a connected line. It exposes a settable
// line color slot.
type LineTrace struct {
	name  string
	X     []float64
	Y     []float64
	color string
}

// NewLineTrace returns a line trace over the given points.
func NewLineTrace(name string, x, y []float64) *LineTrace {
	return &LineTrace{name: name, X: x, Y: y}
}

// Name returns the trace name shown in the legend.
func (t *LineTrace) Name() string { return t.name }

// SetLineColor sets the stroke color as a hex literal.
func (t *LineTrace) SetLineColor(hex string) { t.color = hex }

// LineColor returns the assigned stroke color, or "" if unstyled.
func (t *LineTrace) LineColor() string { return t.color }

// MarkerTrace is a series drawn as unconnected points. It exposes a
// settable marker color slot but no line slot.
type MarkerTrace struct {
	name  string
	X     []float64
	Y     []float64
	color string
}

// NewMarkerTrace returns a marker trace over the given points.
func NewMarkerTrace(name string, x, y []float64) *MarkerTrace {
	return &MarkerTrace{name: name, X: x, Y: y}
}

// Name returns the trace name shown in the legend.
func (t *MarkerTrace) Name() string { return t.name }

// SetMarkerColor sets the dot color as a hex literal.
func (t *MarkerTrace) SetMarkerColor(hex string) { t.color = hex }

// MarkerColor returns the assigned dot color, or "" if unstyled.
func (t *MarkerTrace) MarkerColor() string { return t.color }

// Compile-time capability checks.
var (
	_ Figure            = (*LineFigure)(nil)
	_ Trace             = (*LineTrace)(nil)
	_ LineColorSetter   = (*LineTrace)(nil)
	_ Trace             = (*MarkerTrace)(nil)
	_ MarkerColorSetter = (*MarkerTrace)(nil)
)
