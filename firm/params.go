// Package firm solves a deterministic firm-investment problem by
// value-function iteration over a discretized capital grid. Labor is
// chosen statically at its optimum, which reduces operating profit to
// a function of capital alone; the dynamic choice is next-period
// capital subject to convex adjustment costs.
package firm

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when firm-problem parameters are out
// of range. No computation is performed in that case.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params describes the firm's technology and prices.
type Params struct {
	AlphaK float64 // capital share of output
	AlphaL float64 // labor share of output, AlphaK+AlphaL < 1
	Delta  float64 // depreciation rate in (0,1)
	Psi    float64 // adjustment-cost coefficient, non-negative
	Wage   float64 // wage rate, positive
	Beta   float64 // discount factor in (0,1)
}

// Validate checks the parameters for admissibility.
func (p Params) Validate() error {
	if p.AlphaK <= 0.0 || p.AlphaL <= 0.0 || p.AlphaK+p.AlphaL >= 1.0 {
		return fmt.Errorf("%w: output shares alpha-k %v, alpha-l %v must be positive and sum below 1",
			ErrInvalidParameter, p.AlphaK, p.AlphaL)
	}
	if p.Delta <= 0.0 || p.Delta >= 1.0 {
		return fmt.Errorf("%w: depreciation rate %v outside (0,1)", ErrInvalidParameter, p.Delta)
	}
	if p.Psi < 0.0 {
		return fmt.Errorf("%w: adjustment-cost coefficient %v must be non-negative", ErrInvalidParameter, p.Psi)
	}
	if p.Wage <= 0.0 {
		return fmt.Errorf("%w: wage %v must be positive", ErrInvalidParameter, p.Wage)
	}
	if p.Beta <= 0.0 || p.Beta >= 1.0 {
		return fmt.Errorf("%w: discount factor %v outside (0,1)", ErrInvalidParameter, p.Beta)
	}
	return nil
}

// Profit is the operating profit with labor at its static optimum,
//
//	pi(k) = (1-alpha_l) * (alpha_l/w)^(alpha_l/(1-alpha_l)) * k^(alpha_k/(1-alpha_l)).
func (p Params) Profit(k float64) float64 {
	expL := p.AlphaL / (1.0 - p.AlphaL)
	expK := p.AlphaK / (1.0 - p.AlphaL)
	return (1.0 - p.AlphaL) * math.Pow(p.AlphaL/p.Wage, expL) * math.Pow(k, expK)
}

// SteadyStateCapital is the frictionless steady-state capital stock,
// at which the marginal product of capital equals the user cost
// 1/beta - 1 + delta.
func (p Params) SteadyStateCapital() float64 {
	userCost := 1.0/p.Beta - 1.0 + p.Delta
	inner := math.Pow(p.AlphaK/userCost, 1.0-p.AlphaL) * math.Pow(p.AlphaL/p.Wage, p.AlphaL)
	return math.Pow(inner, 1.0/(1.0-p.AlphaK-p.AlphaL))
}

// AdjustmentCost is the convex cost of moving the capital stock from k
// to kNext, (psi/2) * (i/k)^2 * k with net investment i = kNext - (1-delta)k.
func (p Params) AdjustmentCost(k, kNext float64) float64 {
	i := kNext - (1.0-p.Delta)*k
	return p.Psi / 2.0 * (i / k) * (i / k) * k
}

// CashFlow is the net period payoff of a firm with capital k choosing
// next-period capital kNext: operating profit less net investment less
// adjustment cost.
func (p Params) CashFlow(k, kNext float64) float64 {
	i := kNext - (1.0-p.Delta)*k
	return p.Profit(k) - i - p.AdjustmentCost(k, kNext)
}
