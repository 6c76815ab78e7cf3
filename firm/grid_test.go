package firm

import (
	"math"
	"testing"
)

// TestNewGridShape checks the bounds and ordering of the capital grid.
func TestNewGridShape(t *testing.T) {
	g, err := NewGrid(validParams, 1)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	if len(g) < 2 {
		t.Fatalf("grid too small: %d points", len(g))
	}
	lo, hi := g.Bounds()
	if lo <= 0.0 {
		t.Fatalf("grid lower bound %v not positive", lo)
	}
	if want := 2.0 * validParams.SteadyStateCapital(); math.Abs(hi-want) > 1e-12 {
		t.Fatalf("grid upper bound %v, want %v", hi, want)
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not strictly increasing at %d", i)
		}
	}
}

// TestNewGridGeometricSpacing checks that with density d there are
// exactly d points between k and (1-delta)k: consecutive points differ
// by the factor (1-delta)^(1/d).
func TestNewGridGeometricSpacing(t *testing.T) {
	for _, density := range []int{1, 2, 5} {
		g, err := NewGrid(validParams, density)
		if err != nil {
			t.Fatalf("density %d failed: %v", density, err)
		}
		want := math.Pow(1.0-validParams.Delta, 1.0/float64(density))
		for i := 1; i < len(g); i++ {
			if ratio := g[i-1] / g[i]; math.Abs(ratio-want) > 1e-12 {
				t.Fatalf("density %d: ratio %v at %d, want %v", density, ratio, i, want)
			}
		}
	}
}

// TestNewGridDensity checks that a denser grid nests the number of
// points of the coarser one.
func TestNewGridDensity(t *testing.T) {
	coarse, err := NewGrid(validParams, 1)
	if err != nil {
		t.Fatalf("coarse grid failed: %v", err)
	}
	fine, err := NewGrid(validParams, 3)
	if err != nil {
		t.Fatalf("fine grid failed: %v", err)
	}
	if len(fine) <= 2*len(coarse) {
		t.Fatalf("density 3 grid has %d points, coarse has %d", len(fine), len(coarse))
	}
}

// TestNewGridIdempotent checks that identical inputs yield
// bit-identical grids.
func TestNewGridIdempotent(t *testing.T) {
	a, err := NewGrid(validParams, 2)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	b, err := NewGrid(validParams, 2)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("grid sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grids differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestNewGridInvalidDensity checks the rejection of a non-positive
// density.
func TestNewGridInvalidDensity(t *testing.T) {
	if _, err := NewGrid(validParams, 0); err == nil {
		t.Fatalf("expected error for zero density")
	}
}
