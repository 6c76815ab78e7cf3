package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/firmlab/dynfirm/firm"
	"github.com/firmlab/dynfirm/logger"
	"github.com/firmlab/dynfirm/markov"
)

// Config collects all process, discretization and firm parameters of a
// command invocation. It is populated from command line flags; range
// validation happens in the markov and firm packages before any
// computation.
type Config struct {
	AppName     string
	CommandName string

	Rho             float64 // persistence of the AR(1) process
	Mu              float64 // unconditional mean of the AR(1) process
	SigmaEps        float64 // standard deviation of the AR(1) innovation
	NumStates       int     // number of states of the discretized chain
	Method          string  // discretization method mnemonic
	Span            float64 // grid half-width in stationary deviations (0 = method default)
	BaseSigmaWeight float64 // Tauchen-Hussey base deviation blend weight (0 = default)

	Steps      int   // number of Monte Carlo simulation steps
	RandomSeed int64 // seed of the random generator

	AlphaK   float64 // capital share of output
	AlphaL   float64 // labor share of output
	Delta    float64 // depreciation rate
	Psi      float64 // adjustment-cost coefficient
	Wage     float64 // wage rate
	Rate     float64 // interest rate, discount factor is 1/(1+rate)
	Tol      float64 // sup-norm convergence tolerance
	MaxIter  int     // iteration cap
	Density  int     // capital grid points between k and (1-delta)k
	Workers  int     // goroutines for Bellman row updates
	LogLevel string  // level of the logging of the app action

	Output string // output file for the JSON result
}

// NewConfig reads the flag values of the invoked command.
func NewConfig(ctx *cli.Context) *Config {
	return &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Rho:             ctx.Float64(RhoFlag.Name),
		Mu:              ctx.Float64(MuFlag.Name),
		SigmaEps:        ctx.Float64(SigmaEpsFlag.Name),
		NumStates:       ctx.Int(NumStatesFlag.Name),
		Method:          ctx.String(MethodFlag.Name),
		Span:            ctx.Float64(SpanFlag.Name),
		BaseSigmaWeight: ctx.Float64(BaseSigmaWeightFlag.Name),

		Steps:      ctx.Int(StepsFlag.Name),
		RandomSeed: ctx.Int64(RandomSeedFlag.Name),

		AlphaK:   ctx.Float64(AlphaKFlag.Name),
		AlphaL:   ctx.Float64(AlphaLFlag.Name),
		Delta:    ctx.Float64(DeltaFlag.Name),
		Psi:      ctx.Float64(PsiFlag.Name),
		Wage:     ctx.Float64(WageFlag.Name),
		Rate:     ctx.Float64(RateFlag.Name),
		Tol:      ctx.Float64(ToleranceFlag.Name),
		MaxIter:  ctx.Int(MaxIterFlag.Name),
		Density:  ctx.Int(DensityFlag.Name),
		Workers:  ctx.Int(WorkersFlag.Name),
		LogLevel: ctx.String(logger.LogLevelFlag.Name),

		Output: ctx.Path(OutputFlag.Name),
	}
}

// AR1Params assembles the continuous-process parameters.
func (cfg *Config) AR1Params() markov.AR1Params {
	return markov.AR1Params{
		Rho:      cfg.Rho,
		Mu:       cfg.Mu,
		SigmaEps: cfg.SigmaEps,
	}
}

// MarkovConfig assembles the discretization parameters. The method
// string is validated here since it cannot be represented out of range.
func (cfg *Config) MarkovConfig() (markov.Config, error) {
	method, err := markov.ParseMethod(cfg.Method)
	if err != nil {
		return markov.Config{}, err
	}
	return markov.Config{
		Method:          method,
		N:               cfg.NumStates,
		Span:            cfg.Span,
		BaseSigmaWeight: cfg.BaseSigmaWeight,
	}, nil
}

// FirmParams assembles the firm-problem parameters. The discount
// factor is derived from the interest rate.
func (cfg *Config) FirmParams() firm.Params {
	return firm.Params{
		AlphaK: cfg.AlphaK,
		AlphaL: cfg.AlphaL,
		Delta:  cfg.Delta,
		Psi:    cfg.Psi,
		Wage:   cfg.Wage,
		Beta:   1.0 / (1.0 + cfg.Rate),
	}
}
