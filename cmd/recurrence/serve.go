package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurrence/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	f := cmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.Float64("rate", 20, "requests per second across all clients")
	f.Int("burst", 40, "rate limiter burst")
	f.Int("workers", 4, "batch endpoint concurrency")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg := httpapi.Config{
		Notation:  a.cfg.NotationSymbol(),
		Tolerance: a.cfg.Analysis.Tolerance,
		Rate:      a.cfg.Server.Rate,
		Burst:     a.cfg.Server.Burst,
		Workers:   a.cfg.Batch.Workers,
		Logger:    a.log,
	}
	if a.cfg.History.Enabled {
		h, err := a.history()
		if err != nil {
			return err
		}
		cfg.History = h
	}

	return httpapi.New(cfg).Run(ctx, a.cfg.Server.Addr)
}
