package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is the face of a box a circle hit, classified from the offset
// between the circle center and the nearest point on the box.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// compass holds the unit vector for each direction, in classification order.
var compass = [...]core.Vec2{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "?"
	}
}

// Horizontal reports whether the direction resolves on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// VectorDirection returns the compass direction with the strictly largest dot
// product against the normalized target. Ties keep the earlier direction in
// Up, Right, Down, Left order; a zero vector is Up.
func VectorDirection(target core.Vec2) Direction {
	n := target.Normalize()
	best := Up
	bestDot := 0.0
	for d, v := range compass {
		if dot := n.Dot(v); dot > bestDot {
			bestDot = dot
			best = Direction(d)
		}
	}
	return best
}

// Contact describes a circle-vs-box hit. Offset points from the circle
// center to the nearest point on the box.
type Contact struct {
	Dir    Direction
	Offset core.Vec2
}

// Overlaps is the inclusive AABB test.
func Overlaps(a, b core.Box) bool {
	x := a.Pos.X+a.Size.X >= b.Pos.X && b.Pos.X+b.Size.X >= a.Pos.X
	y := a.Pos.Y+a.Size.Y >= b.Pos.Y && b.Pos.Y+b.Size.Y >= a.Pos.Y
	return x && y
}

// CheckBall tests the ball against a box. A hit requires the nearest point on
// the box to be strictly closer than the radius, so a tangent ball is not a
// collision.
func CheckBall(ball *Ball, box core.Box) (Contact, bool) {
	center := ball.Center()
	half := box.HalfExtents()
	boxCenter := box.Center()

	clamped := center.Sub(boxCenter).Clamp(half.Scale(-1), half)
	closest := boxCenter.Add(clamped)
	offset := closest.Sub(center)

	if offset.Len() >= ball.Radius {
		return Contact{}, false
	}
	return Contact{Dir: VectorDirection(offset), Offset: offset}, true
}
