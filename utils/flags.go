package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the chain and firm commands.
var (
	RhoFlag = cli.Float64Flag{
		Name:  "rho",
		Usage: "persistence of the AR(1) process, must lie in (-1,1)",
		Value: 0.8,
	}
	MuFlag = cli.Float64Flag{
		Name:  "mu",
		Usage: "unconditional mean of the AR(1) process",
		Value: 0.0,
	}
	SigmaEpsFlag = cli.Float64Flag{
		Name:  "sigma-eps",
		Usage: "standard deviation of the AR(1) innovation",
		Value: 0.2,
	}
	NumStatesFlag = cli.IntFlag{
		Name:  "num-states",
		Usage: "number of states of the discretized Markov chain",
		Value: 5,
	}
	MethodFlag = cli.StringFlag{
		Name:  "method",
		Usage: "discretization method (\"adda-cooper\", \"rouwenhorst\", \"tauchen-hussey\", \"tauchen\")",
		Value: "rouwenhorst",
	}
	SpanFlag = cli.Float64Flag{
		Name:  "span",
		Usage: "grid half-width in stationary standard deviations; 0 selects the method default",
		Value: 0.0,
	}
	BaseSigmaWeightFlag = cli.Float64Flag{
		Name:  "base-sigma-weight",
		Usage: "Tauchen-Hussey blend weight between innovation and stationary deviation; 0 selects the default",
		Value: 0.0,
	}
	StepsFlag = cli.IntFlag{
		Name:  "steps",
		Usage: "number of steps of the Monte Carlo simulation",
		Value: 100000,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random generator; simulations are deterministic per seed",
		Value: 4711,
	}
	AlphaKFlag = cli.Float64Flag{
		Name:  "alpha-k",
		Usage: "capital share of output",
		Value: 0.29715,
	}
	AlphaLFlag = cli.Float64Flag{
		Name:  "alpha-l",
		Usage: "labor share of output",
		Value: 0.65,
	}
	DeltaFlag = cli.Float64Flag{
		Name:  "delta",
		Usage: "depreciation rate of capital",
		Value: 0.154,
	}
	PsiFlag = cli.Float64Flag{
		Name:  "psi",
		Usage: "adjustment-cost coefficient",
		Value: 1.08,
	}
	WageFlag = cli.Float64Flag{
		Name:  "wage",
		Usage: "wage rate",
		Value: 0.7,
	}
	RateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "interest rate; the discount factor is 1/(1+rate)",
		Value: 0.04,
	}
	ToleranceFlag = cli.Float64Flag{
		Name:  "tol",
		Usage: "sup-norm convergence tolerance of the value-function iteration",
		Value: 1e-6,
	}
	MaxIterFlag = cli.IntFlag{
		Name:  "max-iter",
		Usage: "iteration cap of the value-function iteration",
		Value: 3000,
	}
	DensityFlag = cli.IntFlag{
		Name:  "density",
		Usage: "number of capital grid points between k and (1-delta)k",
		Value: 1,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of goroutines for the Bellman row updates; 1 runs serially",
		Value: 1,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file for the JSON result; empty prints tables only",
	}
)
