package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize() length = %v, expected 1", n.Len())
	}

	zero := V(0, 0).Normalize()
	if zero != V(0, 0) {
		t.Errorf("Normalize() of zero vector = %v, expected zero", zero)
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 16)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if c := b.Center(); c != V(15, 18) {
		t.Errorf("Center() = %v, expected (15, 18)", c)
	}
	if h := b.HalfExtents(); h != V(10, 8) {
		t.Errorf("HalfExtents() = %v, expected (10, 8)", h)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},     // within range
		{-5, 0, 10, 0},    // below min
		{15, 0, 10, 10},   // above max
		{2.5, 0, 10, 2.5}, // fractional
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%g, %g, %g) = %g, expected %g", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampVec(t *testing.T) {
	got := V(-7, 12).Clamp(V(-5, -5), V(5, 5))
	if got != V(-5, 5) {
		t.Errorf("Clamp() = %v, expected (-5, 5)", got)
	}
}
