// Package breakout implements the brick-breaker simulation: a ball bouncing
// among a paddle and a grid of bricks, with falling power-ups that temporarily
// change how the ball and paddle behave.
package breakout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

var (
	// ErrMalformedGrid is returned when a level source is not a rectangular
	// grid of non-negative integers.
	ErrMalformedGrid = errors.New("breakout: malformed level grid")

	// ErrInvalidGrid is returned when a grid cannot be laid out (no columns,
	// or a non-positive level area).
	ErrInvalidGrid = errors.New("breakout: invalid level grid")
)

// Tile codes.
const (
	TileEmpty = 0
	TileSolid = 1
)

// brickColors maps destructible tile codes to their tint. Codes not listed
// here are destructible and white.
var brickColors = map[int]core.RGB{
	2: {R: 0.2, G: 0.6, B: 1.0},
	3: {R: 0.0, G: 0.7, B: 0.0},
	4: {R: 0.8, G: 0.8, B: 0.4},
	5: {R: 1.0, G: 0.5, B: 0.0},
}

// solidColor is the neutral tint of indestructible bricks.
var solidColor = core.RGB{R: 0.8, G: 0.8, B: 0.7}

// BrickColor returns the tint used for a tile code.
func BrickColor(code int) core.RGB {
	if code == TileSolid {
		return solidColor
	}
	if c, ok := brickColors[code]; ok {
		return c
	}
	return core.White
}

// Level is an ordered collection of bricks built once from a tile grid.
type Level struct {
	Name   string
	Bricks []*Body // row-major
	Rows   int
	Cols   int
}

// ParseTiles reads a level source: whitespace-separated non-negative integers,
// one row per line. Blank lines are skipped.
func ParseTiles(r io.Reader) ([][]int, error) {
	var tiles [][]int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for _, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil || code < 0 {
				return nil, fmt.Errorf("%w: line %d: bad tile %q", ErrMalformedGrid, lineNo, f)
			}
			row = append(row, code)
		}

		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d",
				ErrMalformedGrid, lineNo, len(row), len(tiles[0]))
		}
		tiles = append(tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("breakout: read level: %w", err)
	}
	return tiles, nil
}

// NewLevel lays tiles out on a uniform cell grid covering width × height.
// An empty grid yields an empty level.
func NewLevel(tiles [][]int, width, height float64) (*Level, error) {
	lvl := &Level{}
	if len(tiles) == 0 {
		return lvl, nil
	}

	rows, cols := len(tiles), len(tiles[0])
	if cols == 0 {
		return lvl, fmt.Errorf("%w: zero columns", ErrInvalidGrid)
	}
	if width <= 0 || height <= 0 {
		return lvl, fmt.Errorf("%w: level area %gx%g", ErrInvalidGrid, width, height)
	}
	for y, row := range tiles {
		if len(row) != cols {
			return lvl, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrMalformedGrid, y, len(row), cols)
		}
	}

	unit := core.V(width/float64(cols), height/float64(rows))
	lvl.Rows, lvl.Cols = rows, cols

	for y, row := range tiles {
		for x, code := range row {
			if code == TileEmpty {
				continue
			}
			pos := core.V(unit.X*float64(x), unit.Y*float64(y))

			tex := core.TextureBlock
			if code == TileSolid {
				tex = core.TextureBlockSolid
			}
			brick := NewBody(pos, unit, tex)
			brick.Color = BrickColor(code)
			brick.IsSolid = code == TileSolid
			lvl.Bricks = append(lvl.Bricks, &brick)
		}
	}
	return lvl, nil
}

// LoadLevel parses a level source and lays it out. It never returns a nil
// Level: on any error the level is empty (and therefore already completed),
// and the error is returned so the caller can log it and carry on.
func LoadLevel(r io.Reader, width, height float64) (*Level, error) {
	tiles, err := ParseTiles(r)
	if err != nil {
		return &Level{}, err
	}
	lvl, err := NewLevel(tiles, width, height)
	if err != nil {
		return &Level{}, err
	}
	return lvl, nil
}

// IsCompleted reports whether every destructible brick is destroyed.
func (l *Level) IsCompleted() bool {
	return l.Remaining() == 0
}

// Remaining counts destructible bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for _, b := range l.Bricks {
		if !b.IsSolid && !b.Destroyed {
			n++
		}
	}
	return n
}

// Draw draws every standing brick.
func (l *Level) Draw(batch core.SpriteBatch) {
	for _, b := range l.Bricks {
		b.Draw(batch)
	}
}
