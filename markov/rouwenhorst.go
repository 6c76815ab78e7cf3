package markov

// newRouwenhorstChain builds an evenly spaced grid of n points centered
// at the process mean with half-width span stationary deviations, and a
// transition matrix constructed by the Rouwenhorst recursion. The
// recursion keeps the matrix exactly row-stochastic, so no quadrature
// error is introduced.
func newRouwenhorstChain(p AR1Params, n int, span float64) *Chain {
	halfWidth := p.StationarySigma() * span
	states := make([]float64, n)
	step := 2.0 * halfWidth / float64(n-1)
	for i := 0; i < n; i++ {
		states[i] = p.Mu - halfWidth + float64(i)*step
	}

	// Two-state base case with p = q = (1+rho)/2.
	pq := (1.0 + p.Rho) / 2.0
	transition := [][]float64{
		{pq, 1.0 - pq},
		{1.0 - pq, pq},
	}
	for k := 3; k <= n; k++ {
		transition = expandRouwenhorst(transition, pq, pq)
	}

	return &Chain{States: states, Transition: transition}
}

// expandRouwenhorst grows a (k-1)-state Rouwenhorst matrix to k states
// by summing four shifted, weighted copies and halving the interior
// rows, which would otherwise sum to two.
func expandRouwenhorst(prev [][]float64, p, q float64) [][]float64 {
	k := len(prev) + 1
	next := make([][]float64, k)
	for i := range next {
		next[i] = make([]float64, k)
	}
	for i := 0; i < k-1; i++ {
		for j := 0; j < k-1; j++ {
			next[i][j] += p * prev[i][j]
			next[i][j+1] += (1.0 - p) * prev[i][j]
			next[i+1][j] += (1.0 - q) * prev[i][j]
			next[i+1][j+1] += q * prev[i][j]
		}
	}
	for i := 1; i < k-1; i++ {
		for j := 0; j < k; j++ {
			next[i][j] /= 2.0
		}
	}
	return next
}
