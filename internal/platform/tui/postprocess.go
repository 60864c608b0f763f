package tui

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorCycle is the order chaos rotates colored cells through.
var colorCycle = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// PostProcess applies the frame's screen-space effects in place. t is the
// level clock in seconds and drives the animated effects.
func PostProcess(s *core.Screen, fx core.PostEffects, t float64) {
	if fx.Chaos {
		chaos(s, t)
	}
	if fx.Confuse {
		confuse(s)
	}
	if fx.Shake {
		shake(s, t)
	}
}

// shake jitters the whole frame one cell left or right.
func shake(s *core.Screen, t float64) {
	dx := 1
	if int(t*40)%2 == 1 {
		dx = -1
	}
	w := s.Width()
	row := make([]core.Cell, w)
	for y := range s.Height() {
		for x := range w {
			row[x] = s.GetCell(x-dx, y)
		}
		for x, c := range row {
			s.SetCell(x, y, c)
		}
	}
}

// confuse mirrors the frame on both axes and inverts its colors.
func confuse(s *core.Screen) {
	w, h := s.Width(), s.Height()
	snapshot := make([]core.Cell, 0, w*h)
	for y := range h {
		for x := range w {
			snapshot = append(snapshot, s.GetCell(x, y))
		}
	}
	for y := range h {
		for x := range w {
			c := snapshot[(h-1-y)*w+(w-1-x)]
			if c.Rune != ' ' {
				c.Color = c.Color.RGB().Invert().Nearest()
			}
			s.SetCell(x, y, c)
		}
	}
}

// chaos scrolls each row by a time- and row-dependent amount and cycles the
// colors of every painted cell.
func chaos(s *core.Screen, t float64) {
	w := s.Width()
	if w == 0 {
		return
	}
	phase := int(t * 12)
	row := make([]core.Cell, w)
	for y := range s.Height() {
		shift := (phase + y) % w
		for x := range w {
			c := s.GetCell((x+shift)%w, y)
			if c.Rune != ' ' {
				c.Color = colorCycle[(phase+x+y)%len(colorCycle)]
			}
			row[x] = c
		}
		for x, c := range row {
			s.SetCell(x, y, c)
		}
	}
}
