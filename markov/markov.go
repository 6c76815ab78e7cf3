// Package markov discretizes a continuous AR(1) process
//
//	z' = (1-rho)*mu + rho*z + eps,  eps ~ N(0, sigma_eps^2)
//
// into a finite-state Markov chain. Four competing discretization
// methods are supported; all of them produce a strictly increasing
// state grid together with a row-stochastic transition matrix.
package markov

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when process or discretization
// parameters are out of range. No computation is performed in that case.
var ErrInvalidParameter = errors.New("invalid parameter")

// rowSumEps is the acceptable deviation of a transition-matrix row sum
// from one for quadrature-based methods. Rouwenhorst and Tauchen are
// row-stochastic by construction and are held to the same bound.
const rowSumEps = 1e-6

// AR1Params describes the continuous AR(1) process to be discretized.
type AR1Params struct {
	Rho      float64 // persistence, must lie in (-1,1)
	Mu       float64 // unconditional mean
	SigmaEps float64 // standard deviation of the innovation, must be positive
}

// StationarySigma returns the standard deviation of the stationary
// distribution of the process, sigma_eps / sqrt(1-rho^2).
func (p AR1Params) StationarySigma() float64 {
	return p.SigmaEps / math.Sqrt(1.0-p.Rho*p.Rho)
}

// validate checks the process parameters for stationarity.
func (p AR1Params) validate() error {
	if math.Abs(p.Rho) >= 1.0 {
		return fmt.Errorf("%w: rho %v outside (-1,1)", ErrInvalidParameter, p.Rho)
	}
	if p.SigmaEps <= 0.0 {
		return fmt.Errorf("%w: sigma-eps %v must be positive", ErrInvalidParameter, p.SigmaEps)
	}
	return nil
}

// Method selects one of the supported discretization methods.
type Method int

const (
	AddaCooper Method = iota
	Rouwenhorst
	TauchenHussey
	Tauchen
)

// methodNames maps a method to its mnemonic used by flags and output.
var methodNames = map[Method]string{
	AddaCooper:    "adda-cooper",
	Rouwenhorst:   "rouwenhorst",
	TauchenHussey: "tauchen-hussey",
	Tauchen:       "tauchen",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod converts a method mnemonic to a Method value.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, s)
}

// Config selects a discretization method and its tunables. The zero
// value of Span and BaseSigmaWeight requests the method default.
type Config struct {
	Method Method
	N      int // number of states, at least two

	// Span is the grid half-width in stationary standard deviations,
	// used by Rouwenhorst (default sqrt(N-1)) and Tauchen (default 3).
	Span float64

	// BaseSigmaWeight blends the innovation and stationary standard
	// deviations into the Tauchen-Hussey base deviation
	// sigma_hat = w*sigma_eps + (1-w)*sigma_z (default 0.5).
	BaseSigmaWeight float64
}

// span returns the configured grid half-width or the method default.
func (c Config) span() float64 {
	if c.Span != 0.0 {
		return c.Span
	}
	switch c.Method {
	case Rouwenhorst:
		return math.Sqrt(float64(c.N - 1))
	default:
		return 3.0
	}
}

// baseSigmaWeight returns the configured blend weight or the default.
func (c Config) baseSigmaWeight() float64 {
	if c.BaseSigmaWeight != 0.0 {
		return c.BaseSigmaWeight
	}
	return 0.5
}

// validate checks the discretization parameters.
func (c Config) validate() error {
	if c.N < 2 {
		return fmt.Errorf("%w: number of states %d must be at least 2", ErrInvalidParameter, c.N)
	}
	if c.Span < 0.0 {
		return fmt.Errorf("%w: span %v must be positive", ErrInvalidParameter, c.Span)
	}
	if c.BaseSigmaWeight < 0.0 {
		return fmt.Errorf("%w: base-sigma-weight %v must be positive", ErrInvalidParameter, c.BaseSigmaWeight)
	}
	if _, ok := methodNames[c.Method]; !ok {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidParameter, int(c.Method))
	}
	return nil
}

// WarningCode classifies a non-fatal numerical-quality issue detected
// while constructing a chain.
type WarningCode int

const (
	// WarnRowSum indicates a transition-matrix row whose probabilities
	// do not sum to one within the quadrature tolerance.
	WarnRowSum WarningCode = iota

	// WarnDuplicateStates indicates grid points that collided
	// numerically and are no longer strictly increasing. Known to
	// happen for Tauchen-Hussey with more than eight states.
	WarnDuplicateStates
)

// Warning reports a numerical-quality issue alongside an otherwise
// usable chain. Warnings are informational; the caller decides whether
// to retry with a different method or tighter parameters.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}

// Chain is a finite-state Markov chain approximating an AR(1) process.
// States are strictly increasing by construction; Transition[i][j] is
// the probability of moving from state i to state j. A chain is
// immutable once constructed.
type Chain struct {
	States     []float64   `json:"states"`
	Transition [][]float64 `json:"transitionMatrix"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

// N returns the number of states of the chain.
func (c *Chain) N() int {
	return len(c.States)
}

// Approximate discretizes the AR(1) process into a Markov chain using
// the configured method. Parameter errors abort before any computation;
// numerical-quality issues are reported in the chain's Warnings.
func Approximate(p AR1Params, cfg Config) (*Chain, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var chain *Chain
	switch cfg.Method {
	case AddaCooper:
		chain = newAddaCooperChain(p, cfg.N)
	case Rouwenhorst:
		chain = newRouwenhorstChain(p, cfg.N, cfg.span())
	case TauchenHussey:
		chain = newTauchenHusseyChain(p, cfg.N, cfg.baseSigmaWeight())
	case Tauchen:
		chain = newTauchenChain(p, cfg.N, cfg.span())
	}
	chain.checkRowSums()
	chain.checkStrictlyIncreasing()
	return chain, nil
}

// checkRowSums records a warning for every row whose probabilities do
// not sum to one within the quadrature tolerance.
func (c *Chain) checkRowSums() {
	for i, row := range c.Transition {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		if math.Abs(sum-1.0) > rowSumEps {
			c.Warnings = append(c.Warnings, Warning{
				Code:    WarnRowSum,
				Message: fmt.Sprintf("row %d sums to %.10f instead of 1", i, sum),
			})
		}
	}
}

// checkStrictlyIncreasing records a warning when grid points collided.
func (c *Chain) checkStrictlyIncreasing() {
	for i := 1; i < len(c.States); i++ {
		if c.States[i] <= c.States[i-1] {
			c.Warnings = append(c.Warnings, Warning{
				Code: WarnDuplicateStates,
				Message: fmt.Sprintf("states %d and %d collided (%v, %v)",
					i-1, i, c.States[i-1], c.States[i]),
			})
		}
	}
}
