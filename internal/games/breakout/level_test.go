package breakout

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestLoadLevelTwoByTwo(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("1 0\n2 1\n"), 200, 100)
	require.NoError(t, err)
	require.Len(t, lvl.Bricks, 3)

	solid := lvl.Bricks[0]
	assert.Equal(t, core.V(0, 0), solid.Position)
	assert.Equal(t, core.V(100, 50), solid.Size)
	assert.True(t, solid.IsSolid)
	assert.Equal(t, core.RGB{R: 0.8, G: 0.8, B: 0.7}, solid.Color)
	assert.Equal(t, core.TextureBlockSolid, solid.Texture)

	blue := lvl.Bricks[1]
	assert.Equal(t, core.V(0, 50), blue.Position)
	assert.Equal(t, core.V(100, 50), blue.Size)
	assert.False(t, blue.IsSolid)
	assert.Equal(t, core.RGB{R: 0.2, G: 0.6, B: 1.0}, blue.Color)
	assert.Equal(t, core.TextureBlock, blue.Texture)

	last := lvl.Bricks[2]
	assert.Equal(t, core.V(100, 50), last.Position)
	assert.True(t, last.IsSolid)

	assert.Equal(t, 2, lvl.Rows)
	assert.Equal(t, 2, lvl.Cols)
	assert.Equal(t, 1, lvl.Remaining())
}

func TestBrickColors(t *testing.T) {
	tests := []struct {
		code  int
		color core.RGB
	}{
		{1, core.RGB{R: 0.8, G: 0.8, B: 0.7}},
		{2, core.RGB{R: 0.2, G: 0.6, B: 1.0}},
		{3, core.RGB{R: 0.0, G: 0.7, B: 0.0}},
		{4, core.RGB{R: 0.8, G: 0.8, B: 0.4}},
		{5, core.RGB{R: 1.0, G: 0.5, B: 0.0}},
		{6, core.White},
		{42, core.White},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.color, BrickColor(tt.code), "code %d", tt.code)
	}
}

func TestUnknownCodeIsDestructibleWhite(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("9\n"), 10, 10)
	require.NoError(t, err)
	require.Len(t, lvl.Bricks, 1)
	assert.False(t, lvl.Bricks[0].IsSolid)
	assert.Equal(t, core.White, lvl.Bricks[0].Color)
}

func TestCellSizeIsFractional(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("2 2 2\n"), 100, 30)
	require.NoError(t, err)
	require.Len(t, lvl.Bricks, 3)
	assert.InDelta(t, 100.0/3, lvl.Bricks[0].Size.X, 1e-9)
	assert.InDelta(t, 200.0/3, lvl.Bricks[2].Position.X, 1e-9)
	assert.Equal(t, 30.0, lvl.Bricks[0].Size.Y)
}

func TestParseTilesSkipsBlankLines(t *testing.T) {
	tiles, err := ParseTiles(strings.NewReader("\n1 2\n   \n3 4\n\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, tiles)
}

func TestParseTilesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"uneven rows", "1 1 1\n1 1\n"},
		{"not a number", "1 x\n"},
		{"negative code", "1 -2\n"},
		{"float code", "1 2.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTiles(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedGrid)
		})
	}
}

func TestLoadLevelSoftFail(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("1 1\n1\n"), 200, 100)
	assert.ErrorIs(t, err, ErrMalformedGrid)
	require.NotNil(t, lvl)
	assert.Empty(t, lvl.Bricks)
	assert.True(t, lvl.IsCompleted())
}

func TestLoadLevelUnreadableSource(t *testing.T) {
	lvl, err := LoadLevel(iotest.ErrReader(iotest.ErrTimeout), 200, 100)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
	require.NotNil(t, lvl)
	assert.True(t, lvl.IsCompleted())
}

func TestLoadLevelEmptySource(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader(""), 200, 100)
	require.NoError(t, err)
	assert.Empty(t, lvl.Bricks)
	assert.True(t, lvl.IsCompleted())
}

func TestNewLevelInvalidGrid(t *testing.T) {
	_, err := NewLevel([][]int{{}}, 200, 100)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = NewLevel([][]int{{1}}, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = NewLevel([][]int{{1}}, 200, -5)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = NewLevel([][]int{{1, 1}, {1}}, 200, 100)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestLevelIsCompleted(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("1 2\n3 1\n"), 100, 100)
	require.NoError(t, err)
	assert.False(t, lvl.IsCompleted())

	for _, b := range lvl.Bricks {
		if !b.IsSolid {
			b.Destroyed = true
		}
	}
	assert.True(t, lvl.IsCompleted(), "solid bricks never block completion")
	assert.Equal(t, 0, lvl.Remaining())
}

func TestLevelDrawSkipsDestroyed(t *testing.T) {
	lvl, err := LoadLevel(strings.NewReader("1 2 2\n"), 90, 10)
	require.NoError(t, err)
	lvl.Bricks[1].Destroyed = true

	batch := &recordingBatch{}
	lvl.Draw(batch)
	assert.Equal(t, 1, batch.count(core.TextureBlockSolid))
	assert.Equal(t, 1, batch.count(core.TextureBlock))
}
