// Package stationary computes the stationary distribution of a
// finite-state Markov chain and its implied moments. It is used to
// validate discretized AR(1) chains against the moments of the
// continuous process.
package stationary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// eigenEps is the tolerance for identifying the unit eigenvalue and
// rejecting complex eigenvector components.
const eigenEps = 1e-9

// ComputeDistribution computes the stationary distribution of a
// row-stochastic matrix as the left eigenvector of its unit eigenvalue.
func ComputeDistribution(M [][]float64) ([]float64, error) {
	n := len(M)
	elements := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		if len(M[i]) != n {
			return nil, fmt.Errorf("stochastic matrix is not square; row %d has %d columns", i, len(M[i]))
		}
		elements = append(elements, M[i]...)
	}
	a := mat.NewDense(n, n, elements)

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("eigen-value decomposition failed")
	}

	// Find the index of the unit eigenvalue; it is not necessarily
	// the first one reported.
	k := -1
	for i, ev := range eig.Values(nil) {
		if math.Abs(real(ev)-1.0) < eigenEps && math.Abs(imag(ev)) < eigenEps {
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("no eigenvalue of one found; matrix is not row-stochastic")
	}

	var vectors mat.CDense
	eig.LeftVectorsTo(&vectors)

	// Normalize the eigenvector to a probability distribution.
	total := complex128(0)
	for i := 0; i < n; i++ {
		total += vectors.At(i, k)
	}
	if imag(total) > eigenEps {
		return nil, fmt.Errorf("stationary eigenvector has a complex component")
	}
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Abs(real(vectors.At(i, k)) / real(total))
	}
	return dist, nil
}

// Moments returns the mean and variance of the grid values under the
// given distribution.
func Moments(states, dist []float64) (mean, variance float64, err error) {
	if len(states) != len(dist) {
		return 0, 0, fmt.Errorf("grid has %d states but distribution has %d entries", len(states), len(dist))
	}
	for i, s := range states {
		mean += dist[i] * s
	}
	for i, s := range states {
		d := s - mean
		variance += dist[i] * d * d
	}
	return mean, variance, nil
}
