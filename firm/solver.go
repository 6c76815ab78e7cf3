package firm

import (
	"fmt"
	"math"
)

// Solution is the result of a value-function iteration. Non-convergence
// within the iteration cap is a reported condition, not an error: the
// best-effort value and policy are still meaningful to the caller.
type Solution struct {
	V           []float64 `json:"valueFunction"`
	Policy      []int     `json:"policyIndices"`
	Converged   bool      `json:"converged"`
	Iterations  int       `json:"iterations"`
	SupNormDiff float64   `json:"supNormDiff"`
}

// Option configures the solver.
type Option func(*solverConfig)

type solverConfig struct {
	workers int
	initial []float64
	trace   func(iteration int, supNorm float64, v []float64)
}

// WithWorkers sets the number of goroutines used for the Bellman row
// updates. The default is one, i.e. a serial solve; the update is
// independent across rows, so any worker count yields the same result.
func WithWorkers(n int) Option {
	return func(c *solverConfig) { c.workers = n }
}

// WithInitialValue sets the initial guess for the value function
// instead of the zero vector. The slice is copied.
func WithInitialValue(v []float64) Option {
	return func(c *solverConfig) { c.initial = v }
}

// WithIterationTrace registers a callback invoked after every
// iteration with the iteration number, the sup-norm difference and the
// updated value function. The slice is reused across iterations; the
// callback must copy it if it wants to keep a history.
func WithIterationTrace(fn func(iteration int, supNorm float64, v []float64)) Option {
	return func(c *solverConfig) { c.trace = fn }
}

// Solve computes the fixed point of the Bellman operator
//
//	V(i) = max_j payoff(i,j) + beta*V(j)
//
// by value-function iteration, together with the maximizing policy.
// Ties in the maximization break toward the lowest index. The
// iteration stops when the sup-norm difference between successive
// value functions falls to tol, or after maxIter iterations with
// Converged set to false. maxIter of zero returns the initial guess
// unchanged.
func Solve(g Grid, payoff *PayoffMatrix, beta, tol float64, maxIter int, opts ...Option) (*Solution, error) {
	n := len(g)
	if payoff.Size() != n {
		return nil, fmt.Errorf("%w: payoff matrix size %d does not match grid size %d",
			ErrInvalidParameter, payoff.Size(), n)
	}
	if beta <= 0.0 || beta >= 1.0 {
		return nil, fmt.Errorf("%w: discount factor %v outside (0,1)", ErrInvalidParameter, beta)
	}
	if tol <= 0.0 {
		return nil, fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidParameter, tol)
	}
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: iteration cap %d must be non-negative", ErrInvalidParameter, maxIter)
	}

	cfg := solverConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := make([]float64, n)
	if cfg.initial != nil {
		if len(cfg.initial) != n {
			return nil, fmt.Errorf("%w: initial guess length %d does not match grid size %d",
				ErrInvalidParameter, len(cfg.initial), n)
		}
		copy(v, cfg.initial)
	}
	vNew := make([]float64, n)
	policy := make([]int, n)
	diffs := make([]float64, n)

	sol := &Solution{V: v, Policy: policy}
	for sol.Iterations = 0; sol.Iterations < maxIter; {
		parallelRows(n, cfg.workers, func(i int) {
			row := payoff.row(i)
			best := math.Inf(-1)
			argmax := 0
			for j := 0; j < n; j++ {
				if cand := row[j] + beta*v[j]; cand > best {
					best = cand
					argmax = j
				}
			}
			vNew[i] = best
			policy[i] = argmax
			diffs[i] = math.Abs(best - v[i])
		})
		sol.SupNormDiff = 0.0
		for _, d := range diffs {
			if d > sol.SupNormDiff {
				sol.SupNormDiff = d
			}
		}
		v, vNew = vNew, v
		sol.Iterations++
		if cfg.trace != nil {
			cfg.trace(sol.Iterations, sol.SupNormDiff, v)
		}
		if sol.SupNormDiff <= tol {
			sol.Converged = true
			break
		}
	}
	sol.V = v
	return sol, nil
}

// Investment returns the implied net investment optK - (1-delta)*k for
// every grid point under the solved policy.
func Investment(g Grid, sol *Solution, delta float64) []float64 {
	inv := make([]float64, len(g))
	for i, j := range sol.Policy {
		inv[i] = g[j] - (1.0-delta)*g[i]
	}
	return inv
}
