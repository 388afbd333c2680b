package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurrence/config"
	"github.com/katalvlaran/recurrence/logging"
	"github.com/katalvlaran/recurrence/parser"
	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/report"
	"github.com/katalvlaran/recurrence/store"
)

// ErrHistoryDisabled is returned by commands that need the history store
// when history.enabled is false.
var ErrHistoryDisabled = errors.New("recurrence: history is disabled")

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state resolved once per invocation.
type app struct {
	cfgFile string

	errOut io.Writer
	cfg    config.Config
	format report.Format
	log    logr.Logger
	sync   func()

	hist *store.History
}

// execute builds the command tree, runs args and releases resources.
func execute(args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{errOut: errOut, log: logr.Discard(), sync: func() {}}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil {
		_ = report.Error(errOut, a.format, err)
	}
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

// setup resolves configuration and logging for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.format, err = report.ParseFormat(cfg.Output); err != nil {
		return err
	}

	lc := logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development}
	if f, ok := a.errOut.(*os.File); ok && f == os.Stderr {
		a.log, a.sync, err = logging.New(lc)
		return err
	}
	a.log, err = logging.NewTo(a.errOut, lc)
	return err
}

func (a *app) close() error {
	a.sync()
	if a.hist == nil {
		return nil
	}
	err := a.hist.Close()
	a.hist = nil
	return err
}

// history opens the store on first use.
func (a *app) history() (*store.History, error) {
	if !a.cfg.History.Enabled {
		return nil, ErrHistoryDisabled
	}
	if a.hist != nil {
		return a.hist, nil
	}

	sc := store.DefaultConfig(a.cfg.History.Dir)
	if a.cfg.History.InMemory {
		sc = store.InMemoryConfig()
	}
	sc.Logger = a.log
	h, err := store.Open(sc)
	if err != nil {
		return nil, err
	}
	a.hist = h

	return h, nil
}

// record stores res when history is enabled. Failures are logged only.
func (a *app) record(ctx context.Context, res recurrence.Result, source string) {
	h, err := a.history()
	if errors.Is(err, ErrHistoryDisabled) {
		return
	}
	if err == nil {
		_, err = h.Record(ctx, res, source)
	}
	if err != nil {
		a.log.Error(err, "record analysis", "equation", res.Equation)
	}
}

func (a *app) analyzeOptions() []recurrence.Option {
	return []recurrence.Option{
		recurrence.WithTolerance(a.cfg.Analysis.Tolerance),
		recurrence.WithLogger(a.log),
	}
}

// solve parses, analyses and records one equation.
func (a *app) solve(ctx context.Context, equation string, n recurrence.Notation) (recurrence.Result, error) {
	spec, err := parser.ParseSpec(equation)
	if err != nil {
		return recurrence.Result{}, err
	}
	res, err := recurrence.Analyze(spec, n, a.analyzeOptions()...)
	if err != nil {
		return recurrence.Result{}, fmt.Errorf("analyze %q: %w", equation, err)
	}
	a.record(ctx, res, store.SourceCLI)

	return res, nil
}
