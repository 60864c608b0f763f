package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// particleSize is the edge length of a particle quad.
const particleSize = 10

// Particle is a short-lived cosmetic quad trailing the ball.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Color    core.RGB
	Alpha    float64
	Life     float64 // seconds left; dead at <= 0
}

// ParticleGenerator keeps a fixed pool of particles and recycles dead ones.
// Game logic never reads particle state.
type ParticleGenerator struct {
	particles []Particle
	life      float64
	lastUsed  int
	rng       Source
}

// NewParticleGenerator creates a pool of amount dead particles.
func NewParticleGenerator(amount int, life float64, rng Source) *ParticleGenerator {
	return &ParticleGenerator{
		particles: make([]Particle, max(amount, 0)),
		life:      life,
		rng:       rng,
	}
}

// Update respawns newParticles at source and ages the whole pool by dt.
func (g *ParticleGenerator) Update(dt float64, source *Body, newParticles int, offset core.Vec2) {
	if len(g.particles) == 0 {
		return
	}
	for range newParticles {
		g.respawn(&g.particles[g.firstUnused()], source, offset)
	}
	for i := range g.particles {
		p := &g.particles[i]
		p.Life -= dt
		if p.Life > 0 {
			p.Position = p.Position.Sub(p.Velocity.Scale(dt))
			p.Alpha -= dt * 2.5
		}
	}
}

// firstUnused searches from the last used slot, then from the start. When
// every particle is alive the first one is overwritten.
func (g *ParticleGenerator) firstUnused() int {
	for i := g.lastUsed; i < len(g.particles); i++ {
		if g.particles[i].Life <= 0 {
			g.lastUsed = i
			return i
		}
	}
	for i := 0; i < g.lastUsed; i++ {
		if g.particles[i].Life <= 0 {
			g.lastUsed = i
			return i
		}
	}
	g.lastUsed = 0
	return 0
}

func (g *ParticleGenerator) respawn(p *Particle, source *Body, offset core.Vec2) {
	random := float64(g.rng.Intn(100)-50) / 10
	shade := 0.5 + float64(g.rng.Intn(100))/100
	p.Position = source.Position.AddScalar(random).Add(offset)
	p.Color = core.RGB{R: shade, G: shade, B: shade}
	p.Alpha = 1
	p.Life = g.life
	p.Velocity = source.Velocity.Scale(0.1)
}

// Alive counts live particles.
func (g *ParticleGenerator) Alive() int {
	n := 0
	for _, p := range g.particles {
		if p.Life > 0 {
			n++
		}
	}
	return n
}

// Reset kills every particle.
func (g *ParticleGenerator) Reset() {
	clear(g.particles)
	g.lastUsed = 0
}

// Draw draws live particles, dimmed by their alpha.
func (g *ParticleGenerator) Draw(batch core.SpriteBatch) {
	size := core.V(particleSize, particleSize)
	for _, p := range g.particles {
		if p.Life <= 0 {
			continue
		}
		batch.DrawSprite(core.TextureParticle, p.Position, size, 0, p.Color.Scale(core.ClampF(p.Alpha, 0, 1)))
	}
}
