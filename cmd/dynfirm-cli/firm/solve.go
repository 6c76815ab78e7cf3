package firm

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/firmlab/dynfirm/firm"
	"github.com/firmlab/dynfirm/logger"
	"github.com/firmlab/dynfirm/utils"
)

// SolveCommand data structure for the firm-problem app.
var SolveCommand = cli.Command{
	Action: solveAction,
	Name:   "solve",
	Usage:  "solves the deterministic firm-investment problem by value-function iteration",
	Flags: []cli.Flag{
		&utils.AlphaKFlag,
		&utils.AlphaLFlag,
		&utils.DeltaFlag,
		&utils.PsiFlag,
		&utils.WageFlag,
		&utils.RateFlag,
		&utils.ToleranceFlag,
		&utils.MaxIterFlag,
		&utils.DensityFlag,
		&utils.WorkersFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The solve command builds a geometric capital grid up to twice the
frictionless steady-state capital, precomputes the payoff matrix and
iterates the Bellman operator to its fixed point, reporting the value
function, the optimal capital policy and the implied investment.`,
}

// solveResult is the output of the solve command in JSON format.
type solveResult struct {
	Grid       []float64      `json:"capitalGrid"`
	Solution   *firm.Solution `json:"solution"`
	OptCapital []float64      `json:"optCapital"`
	Investment []float64 `json:"investment"`
}

// solveAction implements the solve command.
func solveAction(ctx *cli.Context) error {
	cfg := utils.NewConfig(ctx)
	log := logger.NewLogger(cfg.LogLevel, "Solve")

	p := cfg.FirmParams()
	grid, err := firm.NewGrid(p, cfg.Density)
	if err != nil {
		return err
	}
	lo, hi := grid.Bounds()
	log.Noticef("capital grid with %d points on [%.4f, %.4f], steady state %.4f",
		len(grid), lo, hi, p.SteadyStateCapital())

	payoff := firm.NewPayoffMatrix(p, grid)
	sol, err := firm.Solve(grid, payoff, p.Beta, cfg.Tol, cfg.MaxIter,
		firm.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	if sol.Converged {
		log.Noticef("converged after %d iterations (sup-norm %.3e)", sol.Iterations, sol.SupNormDiff)
	} else {
		log.Warningf("no convergence within %d iterations (sup-norm %.3e); result is best-effort",
			sol.Iterations, sol.SupNormDiff)
	}

	investment := firm.Investment(grid, sol, p.Delta)
	optCapital := make([]float64, len(grid))
	for i, j := range sol.Policy {
		optCapital[i] = grid[j]
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"#", "Capital", "Value", "Opt. Capital", "Investment"})
	for i, k := range grid {
		tbl.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%.4f", k),
			fmt.Sprintf("%.4f", sol.V[i]),
			fmt.Sprintf("%.4f", optCapital[i]),
			fmt.Sprintf("%.4f", investment[i]),
		})
	}
	tbl.Render()

	if cfg.Output != "" {
		log.Noticef("write solution file %v", cfg.Output)
		res := solveResult{
			Grid:       grid,
			Solution:   sol,
			OptCapital: optCapital,
			Investment: investment,
		}
		contents, err := json.MarshalIndent(res, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to marshal solution; %v", err)
		}
		if err := os.WriteFile(cfg.Output, contents, 0644); err != nil {
			return fmt.Errorf("failed to write solution file; %v", err)
		}
	}
	return nil
}
