package firm

import (
	"math"
	"testing"
)

// solveBaseline builds the grid and payoff matrix for the baseline
// parameterization.
func solveBaseline(t *testing.T) (Grid, *PayoffMatrix) {
	t.Helper()
	g, err := NewGrid(validParams, 1)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	return g, NewPayoffMatrix(validParams, g)
}

// TestSolveConverges checks the end-to-end scenario: the baseline
// parameterization converges well within the iteration cap.
func TestSolveConverges(t *testing.T) {
	g, payoff := solveBaseline(t)
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !sol.Converged {
		t.Fatalf("no convergence within 3000 iterations (sup-norm %v)", sol.SupNormDiff)
	}
	if sol.Iterations >= 3000 {
		t.Fatalf("iteration count %d not below the cap", sol.Iterations)
	}
	if len(sol.V) != len(g) || len(sol.Policy) != len(g) {
		t.Fatalf("solution length mismatch")
	}
}

// TestSolvePolicyMonotone checks that for the concave-profit,
// convex-adjustment-cost payoff the optimal capital choice is
// non-decreasing in current capital.
func TestSolvePolicyMonotone(t *testing.T) {
	g, payoff := solveBaseline(t)
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	for i := 1; i < len(g); i++ {
		if sol.Policy[i] < sol.Policy[i-1] {
			t.Fatalf("policy decreases from %d to %d at state %d",
				sol.Policy[i-1], sol.Policy[i], i)
		}
	}
}

// TestSolveSteadyStateInvestment checks that the policy has a fixed
// point in the upper grid region and that the investment rate there
// equals the depreciation rate: the firm replaces exactly what
// depreciates.
func TestSolveSteadyStateInvestment(t *testing.T) {
	g, payoff := solveBaseline(t)
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	inv := Investment(g, sol, validParams.Delta)
	fixed := -1
	for i, j := range sol.Policy {
		if j == i {
			fixed = i
		}
	}
	if fixed == -1 {
		t.Fatalf("policy has no fixed point")
	}
	if fixed < len(g)/2 {
		t.Fatalf("policy fixed point %d lies in the lower half of the grid", fixed)
	}
	if rate := inv[fixed] / g[fixed]; math.Abs(rate-validParams.Delta) > 1e-12 {
		t.Fatalf("steady-state investment rate %v, want %v", rate, validParams.Delta)
	}
}

// TestSolveContraction checks that the iteration converges to the same
// fixed point from different initial guesses.
func TestSolveContraction(t *testing.T) {
	g, payoff := solveBaseline(t)
	tol := 1e-9
	fromZeros, err := Solve(g, payoff, validParams.Beta, tol, 10000)
	if err != nil {
		t.Fatalf("solve from zeros failed: %v", err)
	}
	high := make([]float64, len(g))
	for i := range high {
		high[i] = 100.0
	}
	fromHigh, err := Solve(g, payoff, validParams.Beta, tol, 10000,
		WithInitialValue(high))
	if err != nil {
		t.Fatalf("solve from constant failed: %v", err)
	}
	if !fromZeros.Converged || !fromHigh.Converged {
		t.Fatalf("one of the solves did not converge")
	}
	// both iterates lie within tol*beta/(1-beta) of the fixed point
	bound := tol * validParams.Beta / (1.0 - validParams.Beta) * 4.0
	for i := range g {
		if math.Abs(fromZeros.V[i]-fromHigh.V[i]) > bound {
			t.Fatalf("value functions differ at %d: %v vs %v",
				i, fromZeros.V[i], fromHigh.V[i])
		}
	}
}

// TestSolveZeroIterationCap checks that a cap of zero returns the
// initial guess unchanged and reports non-convergence.
func TestSolveZeroIterationCap(t *testing.T) {
	g, payoff := solveBaseline(t)
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Converged {
		t.Fatalf("reported convergence without iterating")
	}
	if sol.Iterations != 0 {
		t.Fatalf("iteration count %d, want 0", sol.Iterations)
	}
	for i, v := range sol.V {
		if v != 0.0 {
			t.Fatalf("value function changed at %d: %v", i, v)
		}
	}
}

// TestSolveNonConvergenceReported checks that an unreachable tolerance
// yields a best-effort result with Converged false rather than an
// error.
func TestSolveNonConvergenceReported(t *testing.T) {
	g, payoff := solveBaseline(t)
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 3)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Converged {
		t.Fatalf("converged within three iterations at tolerance 1e-6")
	}
	if sol.Iterations != 3 {
		t.Fatalf("iteration count %d, want 3", sol.Iterations)
	}
}

// TestSolveWorkersEquivalent checks that parallel row updates produce
// the identical result as the serial solve.
func TestSolveWorkersEquivalent(t *testing.T) {
	g, payoff := solveBaseline(t)
	serial, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000)
	if err != nil {
		t.Fatalf("serial solve failed: %v", err)
	}
	parallel, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000, WithWorkers(4))
	if err != nil {
		t.Fatalf("parallel solve failed: %v", err)
	}
	if serial.Iterations != parallel.Iterations {
		t.Fatalf("iteration counts differ: %d vs %d", serial.Iterations, parallel.Iterations)
	}
	for i := range g {
		if serial.V[i] != parallel.V[i] || serial.Policy[i] != parallel.Policy[i] {
			t.Fatalf("solutions differ at %d", i)
		}
	}
}

// TestSolveIterationTrace checks that the trace callback sees every
// iteration in order with a non-increasing tail of sup-norm
// differences.
func TestSolveIterationTrace(t *testing.T) {
	g, payoff := solveBaseline(t)
	var iterations []int
	var norms []float64
	sol, err := Solve(g, payoff, validParams.Beta, 1e-6, 3000,
		WithIterationTrace(func(iteration int, supNorm float64, v []float64) {
			iterations = append(iterations, iteration)
			norms = append(norms, supNorm)
		}))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(iterations) != sol.Iterations {
		t.Fatalf("trace saw %d iterations, solver reports %d", len(iterations), sol.Iterations)
	}
	for i, it := range iterations {
		if it != i+1 {
			t.Fatalf("trace iteration %d reported as %d", i+1, it)
		}
	}
	if norms[len(norms)-1] > 1e-6 {
		t.Fatalf("final sup-norm %v above tolerance", norms[len(norms)-1])
	}
}

// TestSolveInvalidArguments checks the parameter validation of the
// solver.
func TestSolveInvalidArguments(t *testing.T) {
	g, payoff := solveBaseline(t)
	if _, err := Solve(g, payoff, 1.0, 1e-6, 100); err == nil {
		t.Fatalf("expected error for discount factor of one")
	}
	if _, err := Solve(g, payoff, validParams.Beta, 0.0, 100); err == nil {
		t.Fatalf("expected error for zero tolerance")
	}
	if _, err := Solve(g, payoff, validParams.Beta, 1e-6, -1); err == nil {
		t.Fatalf("expected error for negative iteration cap")
	}
	if _, err := Solve(g[:3], payoff, validParams.Beta, 1e-6, 100); err == nil {
		t.Fatalf("expected error for grid and matrix size mismatch")
	}
	if _, err := Solve(g, payoff, validParams.Beta, 1e-6, 100,
		WithInitialValue([]float64{1.0})); err == nil {
		t.Fatalf("expected error for short initial guess")
	}
}
