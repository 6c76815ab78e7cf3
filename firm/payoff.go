package firm

import (
	"runtime"
	"sync"
)

// PayoffMatrix holds the net period cash flow for every pair of
// current and next-period capital levels on a grid. Entry (i,j) is the
// payoff of a firm at grid point i choosing grid point j. The matrix
// is built once, outside the Bellman iteration, since it does not
// depend on the value function.
type PayoffMatrix struct {
	n    int
	data []float64
}

// NewPayoffMatrix evaluates the cash flow for all grid-point pairs.
// Rows are independent, so they are filled by a bounded pool of
// workers.
func NewPayoffMatrix(p Params, g Grid) *PayoffMatrix {
	n := len(g)
	m := &PayoffMatrix{n: n, data: make([]float64, n*n)}
	parallelRows(n, runtime.NumCPU(), func(i int) {
		row := m.data[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			row[j] = p.CashFlow(g[i], g[j])
		}
	})
	return m
}

// At returns the payoff of moving from grid point i to grid point j.
func (m *PayoffMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Size returns the number of grid points the matrix was built for.
func (m *PayoffMatrix) Size() int {
	return m.n
}

// row returns the i-th row of the matrix.
func (m *PayoffMatrix) row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// parallelRows applies fn to every row index in [0,n) using at most
// workers goroutines. Each row writes only its own output slot, so no
// synchronization beyond the final wait is needed. A worker count of
// one runs the rows inline.
func parallelRows(n, workers int, fn func(i int)) {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
