package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// World is the per-session context shared by the resolver and the power-up
// manager. The orchestrator owns it and passes it by reference every frame.
type World struct {
	Width  float64
	Height float64

	Ball    *Ball
	Paddle  *Body
	Level   *Level
	Effects core.PostEffects
}

// Spawner rolls power-up drops at a destroyed brick's position.
type Spawner interface {
	Spawn(origin core.Vec2)
}

// Resolver turns detector contacts into ball responses, brick destruction,
// power-up drops and paddle deflection.
type Resolver struct {
	Strength        float64   // paddle deflection multiplier
	InitialVelocity core.Vec2 // reference velocity for paddle deflection
	ShakeDuration   float64   // seconds of shake after a solid hit

	Spawner Spawner
}

// NewResolver creates a resolver with the given tuning.
func NewResolver(strength float64, initial core.Vec2, shake float64, spawner Spawner) *Resolver {
	return &Resolver{
		Strength:        strength,
		InitialVelocity: initial,
		ShakeDuration:   shake,
		Spawner:         spawner,
	}
}

// ResolveBricks tests the ball against every standing brick in storage order.
// Every overlapping brick gets a response; there is no early exit, so adjacent
// bricks hit in the same frame apply cumulative flips. It returns the bricks
// destroyed this frame.
func (r *Resolver) ResolveBricks(w *World) []*Body {
	var destroyed []*Body
	ball := w.Ball

	for _, brick := range w.Level.Bricks {
		if brick.Destroyed {
			continue
		}
		contact, hit := CheckBall(ball, brick.Box())
		if !hit {
			continue
		}

		if !brick.IsSolid {
			brick.Destroyed = true
			destroyed = append(destroyed, brick)
			if r.Spawner != nil {
				r.Spawner.Spawn(brick.Position)
			}
		} else {
			w.Effects.Shake = true
			w.Effects.ShakeTime = r.ShakeDuration
		}

		if ball.PassThrough && !brick.IsSolid {
			continue
		}
		bounce(ball, contact)
	}
	return destroyed
}

// bounce flips one velocity axis and moves the ball so its edge sits just
// past the nearest point on the face it hit. The ball is placed relative to
// that point rather than shifted by the penetration depth, so rounding cannot
// leave it overlapping.
func bounce(ball *Ball, c Contact) {
	nearest := ball.Center().Add(c.Offset)
	r := ball.Radius

	if c.Dir.Horizontal() {
		ball.Velocity.X = -ball.Velocity.X
		if c.Dir == Left {
			ball.Position.X = nearest.X + skin(nearest.X)
		} else {
			ball.Position.X = nearest.X - 2*r - skin(nearest.X)
		}
		return
	}

	ball.Velocity.Y = -ball.Velocity.Y
	if c.Dir == Up {
		ball.Position.Y = nearest.Y - 2*r - skin(nearest.Y)
	} else {
		ball.Position.Y = nearest.Y + skin(nearest.Y)
	}
}

// skin is the clearance left between a corrected ball and the face, scaled
// with the coordinate so it stays above float64 rounding.
func skin(v float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(v))
}

// ResolvePaddle deflects a moving ball off the paddle. The new horizontal
// velocity depends on where the ball struck relative to the paddle center; the
// speed is kept and the ball always leaves upward. A sticky ball glues itself
// to the paddle instead.
func (r *Resolver) ResolvePaddle(w *World) bool {
	ball, paddle := w.Ball, w.Paddle
	if ball.Stuck {
		return false
	}
	if _, hit := CheckBall(ball, paddle.Box()); !hit {
		return false
	}

	centerBoard := paddle.Position.X + paddle.Size.X/2
	distance := ball.Position.X + ball.Radius - centerBoard
	percentage := distance / (paddle.Size.X / 2)

	speed := ball.Velocity.Len()
	ball.Velocity.X = r.InitialVelocity.X * percentage * r.Strength
	if n := ball.Velocity.Normalize(); n.Len() > 0 {
		ball.Velocity = n.Scale(speed)
	}
	ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
	ball.Stuck = ball.Sticky
	return true
}
