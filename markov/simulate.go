package markov

import (
	"fmt"
	"math/rand"
)

// Simulate draws a sample path of numSteps state indices from the
// chain by Monte Carlo simulation, starting at the median-index state.
// The path is deterministic for a given seed.
func Simulate(chain *Chain, numSteps int, seed int64) ([]int, error) {
	if numSteps <= 0 {
		return nil, fmt.Errorf("%w: number of steps %d must be positive", ErrInvalidParameter, numSteps)
	}
	if chain.N() == 0 {
		return nil, fmt.Errorf("%w: chain has no states", ErrInvalidParameter)
	}
	rg := rand.New(rand.NewSource(seed))
	path := make([]int, numSteps)
	state := (chain.N() - 1) / 2
	for step := 0; step < numSteps; step++ {
		state = nextState(rg, chain.Transition, state)
		if state < 0 {
			return nil, fmt.Errorf("transition matrix has a zero row; cannot continue at step %d", step)
		}
		path[step] = state
	}
	return path, nil
}

// nextState produces the next state of the Markovian process by
// inverse-CDF sampling over row i of the stochastic matrix A.
func nextState(rg *rand.Rand, A [][]float64, i int) int {
	// Retrieve a random number in [0,1.0).
	r := rg.Float64()

	// Use Kahan's sum for summing values
	// in case we have a combination of very small
	// and very large values.
	sum := float64(0.0)
	c := float64(0.0)
	k := -1
	for j := 0; j < len(A); j++ {
		y := A[i][j] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if r <= sum {
			return j
		}
		// If we have a numerical unstable cumulative
		// distribution (large and small numbers that cancel
		// each other out when summing up), we can take the last
		// non-zero entry as a solution. It also detects
		// stochastic matrices with a row whose row
		// sum is zero (return value is -1 for such a case).
		if A[i][j] > 0.0 {
			k = j
		}
	}
	return k
}
