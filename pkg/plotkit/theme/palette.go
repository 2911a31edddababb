package theme

// AccentPalette is the fixed, ordered list of series colors. The first five
// entries are the primary chart colors of the design system; the rest are a
// secondary palette of darker, richer tones. Order is significant: trace i
// receives AccentColor(i), cycling once the palette is exhausted.
var AccentPalette = []string{
	"#d97706",
	"#0891b2",
	"#7c3aed",
	"#65a30d",
	"#ca8a04",
	"#E53E3E",
	"#38B2AC",
	"#3182CE",
	"#68D391",
	"#F6AD55",
	"#B794F6",
	"#4FD1C7",
	"#F6E05E",
	"#9F7AEA",
	"#63B3ED",
	"#F687B3",
	"#48BB78",
}

// AccentColor returns the accent color for a given series index, cycling
// through the palette.
func AccentColor(index int) string {
	return AccentPalette[index%len(AccentPalette)]
}
