package markov

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// newTauchenHusseyChain places the grid on Gauss-Hermite quadrature
// nodes transformed by a base standard deviation that blends the
// innovation and stationary deviations. Transition probabilities are
// the quadrature weights rescaled by the ratio of the true conditional
// density to the density implied by the nodes, then row-normalized.
//
// The Hermite node solver is known to produce colliding nodes for
// large state counts (empirically above eight in this domain); the
// caller sees this as a WarnDuplicateStates warning on the chain.
func newTauchenHusseyChain(p AR1Params, n int, baseSigmaWeight float64) *Chain {
	sigmaZ := p.StationarySigma()
	baseSigma := baseSigmaWeight*p.SigmaEps + (1.0-baseSigmaWeight)*sigmaZ

	// Nodes and weights for integrals of the form
	// int exp(-x^2) f(x) dx over the whole real line.
	nodes := make([]float64, n)
	weights := make([]float64, n)
	quad.Hermite{}.FixedLocations(nodes, weights, math.Inf(-1), math.Inf(1))

	states := make([]float64, n)
	for i := 0; i < n; i++ {
		states[i] = p.Mu + math.Sqrt2*baseSigma*nodes[i]
	}

	base := distuv.Normal{Mu: p.Mu, Sigma: baseSigma}
	transition := make([][]float64, n)
	for i := 0; i < n; i++ {
		transition[i] = make([]float64, n)
		cond := distuv.Normal{
			Mu:    (1.0-p.Rho)*p.Mu + p.Rho*states[i],
			Sigma: p.SigmaEps,
		}
		sum := 0.0
		for j := 0; j < n; j++ {
			w := weights[j] / math.SqrtPi
			transition[i][j] = w * cond.Prob(states[j]) / base.Prob(states[j])
			sum += transition[i][j]
		}
		for j := 0; j < n; j++ {
			transition[i][j] /= sum
		}
	}

	return &Chain{States: states, Transition: transition}
}
