package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurrence/recurrence"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "recurrence",
		Short: "Solve recurrence relations asymptotically",
		Long: `recurrence derives O, Ω or Θ bounds for relations of the form
T(n) = aT(n/b) + f(n), T(n) = T(n/b) + T(n/b') + f(n) and T(n) = aT(n-b) + f(n)
using the Master, Extended Master, Muster and Substitution methods.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.String("notation", "theta", "bound notation: O, Ω, Θ, 1-3 or big-o/big-omega/theta")
	pf.String("output", "text", "output format: text, styled or json")
	pf.Float64("tolerance", recurrence.DefaultTolerance, "equality tolerance for case decisions")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Bool("dev", false, "human-readable development logs")
	pf.Bool("history", true, "record analyses in the history store")
	pf.String("history-dir", "", "history store directory")
	pf.Bool("in-memory", false, "keep history in memory for this process only")

	root.AddCommand(
		newSolveCmd(a),
		newInteractiveCmd(a),
		newClassifyCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}
