package firm

import (
	"fmt"
	"math"
)

// gridFloor is the smallest admissible capital level. A strictly
// positive floor keeps the adjustment-cost term finite.
const gridFloor = 1e-3

// Grid is an ascending sequence of strictly positive capital levels.
// Points are spaced geometrically, so the grid is denser near its
// lower bound where the value function has the most curvature.
type Grid []float64

// NewGrid builds a capital grid between a small positive floor and
// twice the frictionless steady-state capital. Density is the number
// of grid points lying between k and (1-delta)k: points follow
// k_i = k_max * (1-delta)^(i/density), reversed to ascending order.
// The construction is a pure function of its inputs.
func NewGrid(p Params, density int) (Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if density < 1 {
		return nil, fmt.Errorf("%w: density %d must be positive", ErrInvalidParameter, density)
	}

	kMax := 2.0 * p.SteadyStateCapital()
	shrink := math.Pow(1.0-p.Delta, 1.0/float64(density))
	g := Grid{}
	for k := kMax; k > gridFloor; k *= shrink {
		g = append(g, k)
	}
	// Reverse to ascending order.
	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
	if len(g) < 2 {
		return nil, fmt.Errorf("%w: grid collapsed to %d points; steady-state capital %v too close to floor",
			ErrInvalidParameter, len(g), kMax/2.0)
	}
	return g, nil
}

// Bounds returns the smallest and largest capital level of the grid.
func (g Grid) Bounds() (float64, float64) {
	return g[0], g[len(g)-1]
}
