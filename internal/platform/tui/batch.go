package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// glyphs maps each texture to the rune its quad is filled with.
var glyphs = map[core.TextureID]rune{
	core.TextureBlock:              '█',
	core.TextureBlockSolid:         '▓',
	core.TexturePaddle:             '▀',
	core.TextureBall:               '●',
	core.TextureParticle:           '·',
	core.TexturePowerUpSpeed:       'S',
	core.TexturePowerUpSticky:      'G',
	core.TexturePowerUpPassThrough: 'P',
	core.TexturePowerUpPadSize:     '+',
	core.TexturePowerUpConfuse:     '?',
	core.TexturePowerUpChaos:       'X',
}

// ScreenBatch is a core.SpriteBatch that rasterizes world-space quads onto a
// cell screen. The whole world is scaled to fit the screen.
type ScreenBatch struct {
	screen *core.Screen
	sx, sy float64 // cells per world unit
}

// NewScreenBatch creates a batch mapping a world of the given size onto screen.
func NewScreenBatch(screen *core.Screen, world core.Vec2) *ScreenBatch {
	b := &ScreenBatch{screen: screen}
	if world.X > 0 {
		b.sx = float64(screen.Width()) / world.X
	}
	if world.Y > 0 {
		b.sy = float64(screen.Height()) / world.Y
	}
	return b
}

// CellRect returns the cells covered by a world-space quad. Every quad covers
// at least one cell.
func (b *ScreenBatch) CellRect(pos, size core.Vec2) core.Rect {
	x0 := int(math.Floor(pos.X * b.sx))
	y0 := int(math.Floor(pos.Y * b.sy))
	x1 := int(math.Floor((pos.X + size.X) * b.sx))
	y1 := int(math.Floor((pos.Y + size.Y) * b.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// DrawSprite fills the quad's cells with the texture glyph in the nearest
// terminal color. Rotation is ignored on a cell grid.
func (b *ScreenBatch) DrawSprite(tex core.TextureID, pos, size core.Vec2, _ float64, color core.RGB) {
	glyph, ok := glyphs[tex]
	if !ok {
		glyph = '#'
	}
	c := color.Nearest()

	if tex == core.TextureParticle {
		center := pos.Add(size.Scale(0.5))
		x := int(math.Floor(center.X * b.sx))
		y := int(math.Floor(center.Y * b.sy))
		// Trails never paint over solid geometry
		if b.screen.Get(x, y) == ' ' {
			b.screen.SetColored(x, y, glyph, c)
		}
		return
	}

	r := b.CellRect(pos, size)
	if !r.Intersects(core.Rect{W: b.screen.Width(), H: b.screen.Height()}) {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.screen.SetColored(x, y, glyph, c)
		}
	}
}
