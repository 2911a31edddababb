package figure

// LegendOrientation controls how legend entries are laid out.
type LegendOrientation string

const (
	LegendHorizontal LegendOrientation = "horizontal"
	LegendVertical   LegendOrientation = "vertical"
)

// Anchor positions the legend relative to the plot area.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
	AnchorRight  Anchor = "right"
)

// FontSpec describes a font family, point size, and color.
type FontSpec struct {
	Family string
	Size   float64
	Color  string
}

// AxisStyle holds the per-axis presentation values a styler may set.
type AxisStyle struct {
	GridColor     string
	GridWidth     float64
	LineColor     string
	LineWidth     float64
	TickColor     string
	LabelColor    string
	ZeroLineColor string
	ZeroLineWidth float64
}

// LegendStyle holds legend presentation and placement.
type LegendStyle struct {
	Background  string
	Border      string
	FontColor   string
	Orientation LegendOrientation
	XAnchor     Anchor
	YAnchor     Anchor
}

// Layout is the mutable layout of a figure. Stylers write into it; the
// rendering engine reads from it. X/Y data of the traces never lives here.
type Layout struct {
	PaperBackground string
	PlotBackground  string
	Font            FontSpec

	Title     string
	TitleFont FontSpec

	XAxis      AxisStyle
	YAxis      AxisStyle
	XAxisTitle string
	YAxisTitle string

	Legend LegendStyle
}

// Trace is one plotted data series within a figure.
type Trace interface {
	Name() string
}

// LineColorSetter is implemented by traces whose line color can be set.
// The styler prefers this slot when assigning accent colors.
type LineColorSetter interface {
	SetLineColor(hex string)
}

// MarkerColorSetter is implemented by traces whose marker color can be set.
// The styler falls back to this slot when a trace has no line slot.
type MarkerColorSetter interface {
	SetMarkerColor(hex string)
}

// Figure is the capability contract consumed by the styler and exporter: a
// mutable layout plus an ordered trace sequence. The caller retains
// ownership of the figure at all times.
type Figure interface {
	Layout() *Layout
	Traces() []Trace
}
