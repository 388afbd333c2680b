// Package httpapi serves recurrence analysis over HTTP.
//
// Routes:
//
//	POST /v1/solve         one equation
//	POST /v1/solve/batch   up to 100 equations, solved concurrently
//	GET  /v1/classify?f=   shape of an f(n) description
//	GET  /v1/history       recorded analyses, newest first
//	GET  /health           liveness
//	GET  /metrics          prometheus exposition
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/store"
)

// History is the subset of *store.History the server uses.
type History interface {
	Record(ctx context.Context, res recurrence.Result, source string) (store.Entry, error)
	List(ctx context.Context, limit int) ([]store.Entry, error)
}

// Config configures New.
type Config struct {
	// Notation applies when a request names none; empty means Θ.
	Notation recurrence.Notation
	// Tolerance for case decisions; zero means recurrence.DefaultTolerance.
	Tolerance float64
	// Rate and Burst shape the token bucket shared by all clients.
	// A non-positive Rate disables limiting.
	Rate  float64
	Burst int
	// Workers bounds batch concurrency.
	Workers int
	// History records successful analyses when non-nil.
	History History
	// Registry receives the metrics; nil creates a private registry.
	Registry *prometheus.Registry
	Logger   logr.Logger
}

// Server owns the router and its dependencies.
type Server struct {
	cfg     Config
	engine  *gin.Engine
	metrics *metrics
	log     logr.Logger
	analyze []recurrence.Option
}

// New wires routes and middleware.
func New(cfg Config) *Server {
	if cfg.Notation == "" {
		cfg.Notation = recurrence.BigTheta
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	log := cfg.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	s := &Server{
		cfg:     cfg,
		metrics: newMetrics(reg),
		log:     log.WithName("http"),
	}
	if cfg.Tolerance > 0 {
		s.analyze = append(s.analyze, recurrence.WithTolerance(cfg.Tolerance))
	}
	s.analyze = append(s.analyze, recurrence.WithLogger(s.log))

	e := gin.New()
	e.Use(gin.Recovery(), requestID(), s.observe())
	if cfg.Rate > 0 {
		e.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.Rate), max(cfg.Burst, 1))))
	}

	e.GET("/health", s.handleHealth)
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	v1 := e.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.POST("/solve/batch", s.handleBatch)
	v1.GET("/classify", s.handleClassify)
	v1.GET("/history", s.handleHistory)

	s.engine = e
	return s
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
