package core

// RGB is a linear color with components in [0, 1]. Cosmetic only.
type RGB struct {
	R, G, B float64
}

// White is the neutral tint.
var White = RGB{1, 1, 1}

// Scale multiplies each component by s.
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Invert returns the complementary color.
func (c RGB) Invert() RGB {
	return RGB{1 - c.R, 1 - c.G, 1 - c.B}
}

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette pairs each terminal color with its approximate RGB value.
var palette = []struct {
	color Color
	rgb   RGB
}{
	{ColorRed, RGB{0.7, 0.1, 0.1}},
	{ColorGreen, RGB{0.0, 0.7, 0.0}},
	{ColorYellow, RGB{0.8, 0.8, 0.4}},
	{ColorBlue, RGB{0.2, 0.6, 1.0}},
	{ColorMagenta, RGB{1.0, 0.5, 1.0}},
	{ColorCyan, RGB{0.5, 1.0, 1.0}},
	{ColorWhite, RGB{0.8, 0.8, 0.7}},
	{ColorBrightRed, RGB{1.0, 0.3, 0.3}},
	{ColorBrightGreen, RGB{0.5, 1.0, 0.5}},
	{ColorBrightYellow, RGB{1.0, 1.0, 0.3}},
	{ColorBrightBlue, RGB{0.5, 0.5, 1.0}},
	{ColorBrightMagenta, RGB{0.9, 0.25, 0.9}},
	{ColorBrightCyan, RGB{0.3, 0.9, 0.9}},
	{ColorBrightWhite, RGB{1.0, 1.0, 1.0}},
	{ColorOrange, RGB{1.0, 0.5, 0.0}},
	{ColorGray, RGB{0.5, 0.5, 0.5}},
}

// Nearest maps an RGB tint to the closest terminal color.
func (c RGB) Nearest() Color {
	best := ColorDefault
	bestDist := 1e9
	for _, p := range palette {
		dr := c.R - p.rgb.R
		dg := c.G - p.rgb.G
		db := c.B - p.rgb.B
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = p.color
		}
	}
	return best
}

// RGB returns the approximate tint of a terminal color. The default color
// reads as white.
func (c Color) RGB() RGB {
	for _, p := range palette {
		if p.color == c {
			return p.rgb
		}
	}
	return White
}
