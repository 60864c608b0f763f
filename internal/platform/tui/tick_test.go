package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(100, 0)

	assert.InDelta(t, 1.0/60, frameDelta(time.Time{}, t0, 60), 1e-12)
	assert.InDelta(t, 1.0/60, frameDelta(time.Time{}, t0, 0), 1e-12)
	assert.InDelta(t, 0.02, frameDelta(t0, t0.Add(20*time.Millisecond), 60), 1e-12)
	assert.Equal(t, maxFrameDelta, frameDelta(t0, t0.Add(3*time.Second), 60))
	assert.Equal(t, 0.0, frameDelta(t0, t0.Add(-time.Second), 60))
}
