package markov

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestAddaCooperGridSymmetry checks that the conditional-mean grid of
// a zero-mean process is symmetric around zero.
func TestAddaCooperGridSymmetry(t *testing.T) {
	p := AR1Params{Rho: 0.8, Mu: 0.0, SigmaEps: 0.2}
	chain, err := Approximate(p, Config{Method: AddaCooper, N: 6})
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	n := chain.N()
	for i := 0; i < n/2; i++ {
		if math.Abs(chain.States[i]+chain.States[n-1-i]) > 1e-9 {
			t.Fatalf("states %d and %d not symmetric: %v vs %v",
				i, n-1-i, chain.States[i], chain.States[n-1-i])
		}
	}
}

// TestAddaCooperMeanShift checks that shifting the process mean shifts
// the grid without changing the transition probabilities.
func TestAddaCooperMeanShift(t *testing.T) {
	base := AR1Params{Rho: 0.6, Mu: 0.0, SigmaEps: 0.3}
	shifted := AR1Params{Rho: 0.6, Mu: 2.5, SigmaEps: 0.3}
	c0, err := Approximate(base, Config{Method: AddaCooper, N: 5})
	if err != nil {
		t.Fatalf("base process failed: %v", err)
	}
	c1, err := Approximate(shifted, Config{Method: AddaCooper, N: 5})
	if err != nil {
		t.Fatalf("shifted process failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		if math.Abs((c1.States[i]-c0.States[i])-2.5) > 1e-9 {
			t.Fatalf("state %d did not shift by the mean", i)
		}
		for j := 0; j < 5; j++ {
			if math.Abs(c1.Transition[i][j]-c0.Transition[i][j]) > 1e-9 {
				t.Fatalf("transition[%d][%d] changed under a mean shift", i, j)
			}
		}
	}
}

// TestAddaCooperStationaryVariance simulates a long sample path from
// the discretized chain and checks that the sample standard deviation
// approximates the stationary deviation sigma_eps/sqrt(1-rho^2) of the
// continuous process.
func TestAddaCooperStationaryVariance(t *testing.T) {
	p := AR1Params{Rho: 0.8, Mu: 0.0, SigmaEps: 0.2}
	chain, err := Approximate(p, Config{Method: AddaCooper, N: 10})
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	path, err := Simulate(chain, 100000, 4711)
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}
	values := make([]float64, len(path))
	for i, s := range path {
		values[i] = chain.States[s]
	}
	sigmaZ := p.StationarySigma()
	got := stat.StdDev(values, nil)
	// allow for discretization bias and sampling noise
	if math.Abs(got-sigmaZ)/sigmaZ > 0.1 {
		t.Fatalf("sample std-dev %v too far from stationary %v", got, sigmaZ)
	}
	if mean := stat.Mean(values, nil); math.Abs(mean) > 0.05 {
		t.Fatalf("sample mean %v too far from zero", mean)
	}
}
