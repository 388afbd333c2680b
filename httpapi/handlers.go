package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/recurrence/batch"
	"github.com/katalvlaran/recurrence/parser"
	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/report"
	"github.com/katalvlaran/recurrence/store"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.solve(req)
	if err != nil {
		s.metrics.solveErrors.Inc()
		s.fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.solves.WithLabelValues(res.Method).Inc()

	c.JSON(http.StatusOK, s.respond(c, res))
}

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]batch.Item, len(req.Items))
	for i, r := range req.Items {
		items[i] = batch.Item{Equation: r.Equation, Notation: r.Notation}
	}
	out, err := batch.Run(c.Request.Context(), items, batch.Options{
		Workers:  s.cfg.Workers,
		Notation: s.cfg.Notation,
		Logger:   s.log,
		Analyze:  s.analyze,
	})
	if err != nil {
		s.fail(c, http.StatusServiceUnavailable, err.Error())
		return
	}

	resp := BatchResponse{Results: make([]SolveResponse, len(out))}
	for i, o := range out {
		if o.Err != nil {
			s.metrics.solveErrors.Inc()
			resp.Results[i] = SolveResponse{Equation: o.Item.Equation, Error: o.Err.Error()}
			continue
		}
		s.metrics.solves.WithLabelValues(o.Result.Method).Inc()
		resp.Results[i] = s.respond(c, o.Result)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleClassify(c *gin.Context) {
	f := c.Query("f")
	if f == "" {
		s.fail(c, http.StatusBadRequest, "query parameter f is required")
		return
	}
	c.JSON(http.StatusOK, report.ShapeDoc(f))
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			s.fail(c, http.StatusBadRequest, "limit must be an integer in [1, 500]")
			return
		}
		limit = n
	}
	if s.cfg.History == nil {
		c.JSON(http.StatusOK, []store.Entry{})
		return
	}

	entries, err := s.cfg.History.List(c.Request.Context(), limit)
	if err != nil {
		s.log.Error(err, "list history")
		s.fail(c, http.StatusInternalServerError, "history unavailable")
		return
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) solve(req SolveRequest) (recurrence.Result, error) {
	n := s.cfg.Notation
	if req.Notation != "" {
		var err error
		if n, err = recurrence.ParseNotation(req.Notation); err != nil {
			return recurrence.Result{}, err
		}
	}
	spec, err := parser.ParseSpec(req.Equation)
	if err != nil {
		return recurrence.Result{}, err
	}

	return recurrence.Analyze(spec, n, s.analyze...)
}

// respond records res when history is enabled and builds the response.
// A failed write is logged, not returned: the analysis itself succeeded.
func (s *Server) respond(c *gin.Context, res recurrence.Result) SolveResponse {
	resp := SolveResponse{
		Equation: res.Equation,
		Method:   res.Method,
		Bound:    res.Bound,
		Case:     res.Case.String(),
		Notation: string(res.Notation),
	}
	if s.cfg.History != nil {
		e, err := s.cfg.History.Record(c.Request.Context(), res, store.SourceHTTP)
		if err != nil {
			s.log.Error(err, "record analysis", "request_id", c.GetString(ctxRequestID))
		} else {
			resp.ID = e.ID.String()
		}
	}

	return resp
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, RequestID: c.GetString(ctxRequestID)})
}
