package chain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/firmlab/dynfirm/logger"
	"github.com/firmlab/dynfirm/markov"
	"github.com/firmlab/dynfirm/utils"
)

// ApproximateCommand data structure for the chain approximation app.
var ApproximateCommand = cli.Command{
	Action: approximateAction,
	Name:   "approximate",
	Usage:  "discretizes an AR(1) process into a finite-state Markov chain",
	Flags: []cli.Flag{
		&utils.RhoFlag,
		&utils.MuFlag,
		&utils.SigmaEpsFlag,
		&utils.NumStatesFlag,
		&utils.MethodFlag,
		&utils.SpanFlag,
		&utils.BaseSigmaWeightFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The approximate command discretizes the AR(1) process

    z' = (1-rho)*mu + rho*z + eps,  eps ~ N(0, sigma-eps^2)

into a Markov chain with the chosen number of states, printing the
state grid and transition matrix and optionally writing them as JSON.`,
}

// approximateAction implements the approximate command.
func approximateAction(ctx *cli.Context) error {
	cfg := utils.NewConfig(ctx)
	log := logger.NewLogger(cfg.LogLevel, "Approximate")

	mCfg, err := cfg.MarkovConfig()
	if err != nil {
		return err
	}
	log.Noticef("discretize AR(1) with %v into %d states", mCfg.Method, mCfg.N)
	chain, err := markov.Approximate(cfg.AR1Params(), mCfg)
	if err != nil {
		return err
	}
	for _, w := range chain.Warnings {
		log.Warningf("numerical warning: %v", w)
	}

	renderChain(os.Stdout, chain)
	if cfg.Output != "" {
		log.Noticef("write chain file %v", cfg.Output)
		return writeJSON(cfg.Output, chain)
	}
	return nil
}

// renderChain prints the state grid and transition matrix as tables.
func renderChain(w io.Writer, chain *markov.Chain) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"State", "Value"})
	for i, s := range chain.States {
		tbl.Append([]string{strconv.Itoa(i), fmt.Sprintf("%.6f", s)})
	}
	tbl.Render()

	header := []string{"From \\ To"}
	for j := range chain.States {
		header = append(header, strconv.Itoa(j))
	}
	tbl = tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	for i, row := range chain.Transition {
		line := []string{strconv.Itoa(i)}
		for _, p := range row {
			line = append(line, fmt.Sprintf("%.4f", p))
		}
		tbl.Append(line)
	}
	tbl.Render()
}

// writeJSON writes a result object to a file in indented JSON format.
func writeJSON(filename string, v any) error {
	contents, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal result; %v", err)
	}
	if err := os.WriteFile(filename, contents, 0644); err != nil {
		return fmt.Errorf("failed to write result file; %v", err)
	}
	return nil
}
