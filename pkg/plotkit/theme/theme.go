package theme

// Core colors of the light design-system scheme.
const (
	ColorBackground = "#ffffff"
	ColorSurface    = "#ffffff"
	ColorForeground = "#252525"
	ColorBorder     = "#d0d0d0"
)

// Font defaults shared by all charts.
const (
	DefaultFontFamily  = "Source Code Pro, monospace"
	DefaultFontSize    = 10.0
	DefaultTitleSize   = 24.0
	DefaultStrokeWidth = 0.5
)

// AxisStyle describes how a single axis is drawn: grid lines, the axis line
// itself, tick marks, and the zero line.
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

// StyleDescriptor is the immutable bundle of color, font, and axis styling
// values applied to a figure's layout. Equal values are returned on every
// call to Descriptor; callers must not rely on mutating a copy.
type StyleDescriptor struct {
	Background string // page/paper fill
	Surface    string // plot area fill, also the legend background
	Foreground string // text color
	Border     string // axis lines, grid lines, legend border

	FontFamily string
	FontSize   float64
	TitleSize  float64

	Axis AxisStyle
}

// Descriptor returns the fixed light style descriptor. It is pure and
// deterministic: every call within a process returns a field-for-field
// equal value.
func Descriptor() StyleDescriptor {
	return StyleDescriptor{
		Background: ColorBackground,
		Surface:    ColorSurface,
		Foreground: ColorForeground,
		Border:     ColorBorder,

		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		TitleSize:  DefaultTitleSize,

		Axis: AxisStyle{
			GridColor:     ColorBorder,
			GridWidth:     DefaultStrokeWidth,
			LineColor:     ColorBorder,
			LineWidth:     DefaultStrokeWidth,
			TickColor:     ColorBorder,
			LabelColor:    ColorForeground,
			ZeroLineColor: ColorBorder,
			ZeroLineWidth: DefaultStrokeWidth,
		},
	}
}
