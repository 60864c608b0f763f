package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Body is the shared rectangular entity: bricks, the paddle, power-ups and the
// ball are all bodies. Destroyed bodies stay in storage until cleanup but are
// skipped by collision and drawing.
type Body struct {
	Position core.Vec2
	Size     core.Vec2
	Velocity core.Vec2
	Color    core.RGB
	Rotation float64
	Texture  core.TextureID

	IsSolid   bool
	Destroyed bool
}

// NewBody creates a body with a neutral tint.
func NewBody(pos, size core.Vec2, tex core.TextureID) Body {
	return Body{
		Position: pos,
		Size:     size,
		Color:    core.White,
		Texture:  tex,
	}
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.Box{Pos: b.Position, Size: b.Size}
}

// Center returns the center of the bounding box.
func (b *Body) Center() core.Vec2 {
	return b.Box().Center()
}

// Draw hands the body's quad to the sprite batch.
func (b *Body) Draw(batch core.SpriteBatch) {
	if b.Destroyed {
		return
	}
	batch.DrawSprite(b.Texture, b.Position, b.Size, b.Rotation, b.Color)
}

// WallMode selects how the ball treats the play-field edges.
type WallMode int

const (
	// WallStop zeroes the horizontal velocity component that would carry the
	// ball past the left or right edge and clamps it to the boundary.
	WallStop WallMode = iota
	// WallReflect bounces the ball off the left, right and top edges.
	WallReflect
)

// ParseWallMode maps a config string to a WallMode. Unknown values fall back to WallStop.
func ParseWallMode(s string) WallMode {
	if s == "reflect" {
		return WallReflect
	}
	return WallStop
}

// Ball is the circular body. Position is the top-left corner of its 2r square.
type Ball struct {
	Body
	Radius float64

	Stuck       bool // follows the paddle instead of its own velocity
	Sticky      bool // becomes Stuck again on the next paddle contact
	PassThrough bool // no bounce response against destructible bricks
}

// NewBall creates a stuck ball at pos.
func NewBall(pos core.Vec2, radius float64, velocity core.Vec2) *Ball {
	b := &Ball{
		Body:   NewBody(pos, core.V(radius*2, radius*2), core.TextureBall),
		Radius: radius,
		Stuck:  true,
	}
	b.Velocity = velocity
	return b
}

// Center returns the circle center.
func (b *Ball) Center() core.Vec2 {
	return b.Position.AddScalar(b.Radius)
}

// Move integrates the ball's position over dt and keeps it inside the
// horizontal play field. A stuck ball does not move.
func (b *Ball) Move(dt, width float64, walls WallMode) core.Vec2 {
	if b.Stuck {
		return b.Position
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	switch walls {
	case WallReflect:
		if b.Position.X <= 0 {
			b.Velocity.X = -b.Velocity.X
			b.Position.X = 0
		} else if b.Position.X+b.Size.X >= width {
			b.Velocity.X = -b.Velocity.X
			b.Position.X = width - b.Size.X
		}
		if b.Position.Y <= 0 {
			b.Velocity.Y = -b.Velocity.Y
			b.Position.Y = 0
		}
	default:
		if b.Position.X < 0 {
			b.Velocity.X = 0
			b.Position.X = 0
		} else if b.Position.X+b.Size.X > width {
			b.Velocity.X = 0
			b.Position.X = width - b.Size.X
		}
	}
	return b.Position
}

// Reset repositions the ball and glues it back to the paddle.
func (b *Ball) Reset(pos, velocity core.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
	b.Color = core.White
}
