package core

// Color represents a foreground color for a screen cell or an effect.
// The platform maps it to a terminal color.
type Color uint8

// Predefined colors. The neon set mirrors the course palette.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorMagenta
	ColorLime
	ColorBlue
	ColorPink
	ColorYellow
	ColorWhite
	ColorGray
)

// NeonPalette is the ordered set of accent colors. Levels pick their accent
// by index, death particles pick one at random.
var NeonPalette = []Color{ColorCyan, ColorMagenta, ColorLime, ColorBlue, ColorPink}

// NeonColor returns the palette entry for i, wrapping around.
func NeonColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return NeonPalette[i%len(NeonPalette)]
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorLime:
		return "lime"
	case ColorBlue:
		return "blue"
	case ColorPink:
		return "pink"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
