// Package batch solves many recurrences at once. A batch is read from YAML,
// solved by a bounded pool of goroutines and reported in input order. A bad
// item yields an error entry; it never aborts the rest of the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recurrence/parser"
	"github.com/katalvlaran/recurrence/recurrence"
)

var (
	// ErrDecode indicates a batch document that is not valid YAML.
	ErrDecode = errors.New("batch: cannot decode document")

	// ErrEmpty indicates a batch without items.
	ErrEmpty = errors.New("batch: no items")
)

// DefaultWorkers bounds concurrency when Options.Workers is not positive.
const DefaultWorkers = 4

// Item is one equation with an optional notation override.
type Item struct {
	Equation string `yaml:"equation" json:"equation"`
	Notation string `yaml:"notation,omitempty" json:"notation,omitempty"`
}

// File is the YAML document layout.
type File struct {
	Notation string `yaml:"notation,omitempty"`
	Items    []Item `yaml:"items"`
}

// Outcome is the result of one item. Exactly one of Result and Err is set.
type Outcome struct {
	Index  int
	Item   Item
	Result recurrence.Result
	Err    error
}

// Options tunes Run.
type Options struct {
	// Workers bounds the number of concurrently solved items.
	Workers int
	// Notation applies to items without their own; empty means Θ.
	Notation recurrence.Notation
	// Logger receives per-item traces at V(1).
	Logger logr.Logger
	// Analyze is forwarded to recurrence.Analyze.
	Analyze []recurrence.Option
}

// Decode reads a batch document.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(f.Items) == 0 {
		return File{}, ErrEmpty
	}

	return f, nil
}

// Run solves items concurrently. The returned slice is indexed like items.
// Only context cancellation produces a non-nil error; in that case the
// outcomes of unfinished items carry the context error.
func Run(ctx context.Context, items []Item, opts Options) ([]Outcome, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	def := opts.Notation
	if def == "" {
		def = recurrence.BigTheta
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	out := make([]Outcome, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		out[i] = Outcome{Index: i, Item: item}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			out[i].Result, out[i].Err = solve(item, def, opts.Analyze)
			log.V(1).Info("batch item solved", "index", i, "equation", item.Equation, "ok", out[i].Err == nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for i := range out {
			if out[i].Err == nil && out[i].Result.Bound == "" {
				out[i].Err = err
			}
		}
		return out, err
	}

	return out, nil
}

// RunFile solves every item of f using f.Notation as the default.
func RunFile(ctx context.Context, f File, opts Options) ([]Outcome, error) {
	if f.Notation != "" {
		n, err := recurrence.ParseNotation(f.Notation)
		if err != nil {
			return nil, err
		}
		opts.Notation = n
	}

	return Run(ctx, f.Items, opts)
}

func solve(item Item, def recurrence.Notation, opts []recurrence.Option) (recurrence.Result, error) {
	n := def
	if item.Notation != "" {
		var err error
		if n, err = recurrence.ParseNotation(item.Notation); err != nil {
			return recurrence.Result{}, err
		}
	}
	spec, err := parser.ParseSpec(item.Equation)
	if err != nil {
		return recurrence.Result{}, err
	}

	return recurrence.Analyze(spec, n, opts...)
}
