package breakout

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// scriptedSource replays values (mod n). Once exhausted it returns n-1, which
// never triggers a power-up drop.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return n - 1
	}
	v := s.values[s.next] % n
	s.next++
	return v
}

// alwaysSource always returns zero, so every roll succeeds.
type alwaysSource struct{}

func (alwaysSource) Intn(int) int { return 0 }

// gridSource is an in-memory level grid.
type gridSource string

func (g gridSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(g))), nil
}

// brokenSource cannot be opened.
type brokenSource struct{}

func (brokenSource) Open() (io.ReadCloser, error) {
	return nil, io.ErrUnexpectedEOF
}

// spawnRecorder records spawn origins.
type spawnRecorder struct {
	origins []core.Vec2
}

func (r *spawnRecorder) Spawn(origin core.Vec2) {
	r.origins = append(r.origins, origin)
}

// recordingBatch records draw calls.
type recordingBatch struct {
	sprites []core.TextureID
}

func (b *recordingBatch) DrawSprite(tex core.TextureID, _, _ core.Vec2, _ float64, _ core.RGB) {
	b.sprites = append(b.sprites, tex)
}

func (b *recordingBatch) count(tex core.TextureID) int {
	n := 0
	for _, t := range b.sprites {
		if t == tex {
			n++
		}
	}
	return n
}

// ballAt creates a free (not stuck) ball whose center is at c.
func ballAt(c core.Vec2, radius float64, velocity core.Vec2) *Ball {
	b := NewBall(c.AddScalar(-radius), radius, velocity)
	b.Stuck = false
	return b
}
