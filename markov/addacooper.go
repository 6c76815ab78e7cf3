package markov

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// Quadrature constants for the Adda-Cooper transition integrals.
const (
	// quadNodes is the number of Gauss-Legendre nodes per interval.
	quadNodes = 41

	// tailSigmas bounds the two unbounded intervals of the partition
	// when integrating; beyond ten stationary deviations the density
	// mass is negligible at double precision.
	tailSigmas = 10.0
)

// newAddaCooperChain partitions the real line into n intervals of equal
// probability under the stationary distribution of the process. Each
// grid point is the conditional mean of the process within its
// interval; transition probabilities are obtained by numerically
// integrating the stationary density against the conditional interval
// probability of the next state.
func newAddaCooperChain(p AR1Params, n int) *Chain {
	sigmaZ := p.StationarySigma()
	stationary := distuv.Normal{Mu: p.Mu, Sigma: sigmaZ}
	stdNormal := distuv.UnitNormal

	// Interval cut-offs under the stationary distribution. The outer
	// cut-offs are at infinity; they are replaced by finite bounds
	// only when integrating.
	cutoffs := make([]float64, n+1)
	cutoffs[0] = math.Inf(-1)
	cutoffs[n] = math.Inf(1)
	for i := 1; i < n; i++ {
		cutoffs[i] = p.Mu + sigmaZ*stdNormal.Quantile(float64(i)/float64(n))
	}

	// Conditional mean of interval i in closed form: every interval
	// has probability 1/n, so the truncated-normal mean reduces to
	// mu + n*sigma_z*(phi(a_i) - phi(b_i)) with standardized cut-offs.
	states := make([]float64, n)
	for i := 0; i < n; i++ {
		a := standardize(cutoffs[i], p.Mu, sigmaZ)
		b := standardize(cutoffs[i+1], p.Mu, sigmaZ)
		states[i] = p.Mu + float64(n)*sigmaZ*(stdNormal.Prob(a)-stdNormal.Prob(b))
	}

	// Transition probabilities. For each (i,j) pair integrate over
	// interval i the stationary density times the probability that
	// rho*z + (1-rho)*mu + eps lands in interval j. The leading n is
	// the reciprocal of the interval probability 1/n.
	transition := make([][]float64, n)
	for i := 0; i < n; i++ {
		lo, hi := boundInterval(cutoffs[i], cutoffs[i+1], p.Mu, sigmaZ)
		transition[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			zLo, zHi := cutoffs[j], cutoffs[j+1]
			f := func(z float64) float64 {
				condMean := (1.0-p.Rho)*p.Mu + p.Rho*z
				prob := normalIntervalProb(zLo, zHi, condMean, p.SigmaEps)
				return stationary.Prob(z) * prob
			}
			transition[i][j] = float64(n) * quad.Fixed(f, lo, hi, quadNodes, quad.Legendre{}, 0)
		}
	}

	return &Chain{States: states, Transition: transition}
}

// standardize maps a cut-off to units of the stationary deviation.
// Infinities pass through unchanged.
func standardize(x, mu, sigma float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}
	return (x - mu) / sigma
}

// boundInterval replaces infinite cut-offs by finite integration bounds
// far enough in the tail to lose no probability mass.
func boundInterval(lo, hi, mu, sigma float64) (float64, float64) {
	if math.IsInf(lo, -1) {
		lo = mu - tailSigmas*sigma
	}
	if math.IsInf(hi, 1) {
		hi = mu + tailSigmas*sigma
	}
	return lo, hi
}

// normalIntervalProb is the probability that a N(mean, sigma^2) draw
// falls in the interval (lo, hi]. Infinite bounds are permitted.
func normalIntervalProb(lo, hi, mean, sigma float64) float64 {
	d := distuv.Normal{Mu: mean, Sigma: sigma}
	pHi := 1.0
	if !math.IsInf(hi, 1) {
		pHi = d.CDF(hi)
	}
	pLo := 0.0
	if !math.IsInf(lo, -1) {
		pLo = d.CDF(lo)
	}
	return pHi - pLo
}
