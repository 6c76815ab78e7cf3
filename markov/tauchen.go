package markov

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// newTauchenChain builds an evenly spaced grid spanning span stationary
// deviations on both sides of the mean. Transition probabilities are
// normal-CDF differences evaluated at the midpoints between adjacent
// grid cells; probability mass beyond the outermost midpoints is
// absorbed into the boundary states.
func newTauchenChain(p AR1Params, n int, span float64) *Chain {
	halfWidth := p.StationarySigma() * span
	states := make([]float64, n)
	step := 2.0 * halfWidth / float64(n-1)
	for i := 0; i < n; i++ {
		states[i] = p.Mu - halfWidth + float64(i)*step
	}

	transition := make([][]float64, n)
	for i := 0; i < n; i++ {
		transition[i] = make([]float64, n)
		cond := distuv.Normal{
			Mu:    (1.0-p.Rho)*p.Mu + p.Rho*states[i],
			Sigma: p.SigmaEps,
		}
		for j := 0; j < n; j++ {
			switch j {
			case 0:
				transition[i][j] = cond.CDF(states[0] + step/2.0)
			case n - 1:
				transition[i][j] = 1.0 - cond.CDF(states[n-1]-step/2.0)
			default:
				transition[i][j] = cond.CDF(states[j]+step/2.0) - cond.CDF(states[j]-step/2.0)
			}
		}
	}

	return &Chain{States: states, Transition: transition}
}
