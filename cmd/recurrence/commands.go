package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurrence/batch"
	"github.com/katalvlaran/recurrence/report"
	"github.com/katalvlaran/recurrence/store"
)

const defaultHistoryLimit = 20

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "solve <equation>",
		Short:   "Solve one recurrence relation",
		Example: `  recurrence solve "T(n) = 2T(n/2) + n" --notation O`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.solve(cmd.Context(), strings.Join(args, " "), a.cfg.NotationSymbol())
			if err != nil {
				return err
			}
			return report.Result(cmd.OutOrStdout(), a.format, res)
		},
	}
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <f(n)>",
		Short:   "Show how a driving function is classified",
		Example: `  recurrence classify "n^2*log(n)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Shape(cmd.OutOrStdout(), a.format, strings.Join(args, " "))
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Solve every equation of a YAML batch concurrently",
		Long: `The batch file lists items with an equation and an optional notation:

  notation: theta
  items:
    - equation: T(n) = 2T(n/2) + n
    - equation: T(n) = T(n-1) + 1
      notation: O`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := batch.Decode(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out, err := batch.RunFile(cmd.Context(), doc, batch.Options{
				Workers:  a.cfg.Batch.Workers,
				Notation: a.cfg.NotationSymbol(),
				Logger:   a.log,
				Analyze:  a.analyzeOptions(),
			})
			if err != nil {
				return err
			}
			for _, o := range out {
				if o.Err == nil {
					a.record(cmd.Context(), o.Result, store.SourceBatch)
				}
			}

			return report.Outcomes(cmd.OutOrStdout(), a.format, out)
		},
	}
	cmd.Flags().Int("workers", batch.DefaultWorkers, "concurrently solved items")

	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.history()
			if err != nil {
				return err
			}
			entries, err := h.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return report.History(cmd.OutOrStdout(), a.format, entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum number of entries")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "recurrence", version)
		},
	}
}
