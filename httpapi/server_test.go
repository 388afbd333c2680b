package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/recurrence/httpapi"
	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/store"
)

func do(h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder, v interface{}) {
	Expect(json.Unmarshal(w.Body.Bytes(), v)).To(Succeed())
}

var _ = Describe("Server", func() {
	var (
		hist *store.History
		h    http.Handler
	)

	BeforeEach(func() {
		var err error
		hist, err = store.Open(store.InMemoryConfig())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(hist.Close)
		h = httpapi.New(httpapi.Config{History: hist, Workers: 2}).Handler()
	})

	Describe("GET /health", func() {
		It("reports ok", func() {
			w := do(h, http.MethodGet, "/health", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var resp httpapi.HealthResponse
			decode(w, &resp)
			Expect(resp.Status).To(Equal("ok"))
		})

		It("assigns a request id", func() {
			w := do(h, http.MethodGet, "/health", nil)
			Expect(w.Header().Get("X-Request-ID")).NotTo(BeEmpty())
		})
	})

	Describe("POST /v1/solve", func() {
		It("solves a dividing recurrence", func() {
			w := do(h, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = 2T(n/2) + n"})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp httpapi.SolveResponse
			decode(w, &resp)
			Expect(resp.ID).NotTo(BeEmpty())
			Expect(resp.Equation).To(Equal("T(n) = 2T(n/2) + n"))
			Expect(resp.Method).To(Equal("Master Theorem (Case 2a)"))
			Expect(resp.Bound).To(Equal("Θ(n^1.00 · log^2.00(n))"))
			Expect(resp.Case).To(Equal("master-2a"))
			Expect(resp.Notation).To(Equal("Θ"))
		})

		It("honours the requested notation", func() {
			w := do(h, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = T(n-1) + 1", Notation: "O"})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp httpapi.SolveResponse
			decode(w, &resp)
			Expect(resp.Method).To(Equal("Muster Theorem"))
			Expect(resp.Bound).To(HavePrefix("O("))
		})

		It("records the analysis", func() {
			do(h, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = 8T(n/2) + n^2"})

			w := do(h, http.MethodGet, "/v1/history?limit=5", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var entries []store.Entry
			decode(w, &entries)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Source).To(Equal(store.SourceHTTP))
			Expect(entries[0].Method).To(Equal("Master Theorem (Case 1)"))
		})

		DescribeTable("rejects bad input",
			func(body interface{}) {
				w := do(h, http.MethodPost, "/v1/solve", body)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				var resp httpapi.ErrorResponse
				decode(w, &resp)
				Expect(resp.Error).NotTo(BeEmpty())
			},
			Entry("missing equation", map[string]string{}),
			Entry("unparseable equation", httpapi.SolveRequest{Equation: "hello"}),
			Entry("unknown notation", httpapi.SolveRequest{Equation: "T(n) = 2T(n/2) + n", Notation: "7"}),
			Entry("wrong field type", map[string]int{"equation": 3}),
		)
	})

	Describe("POST /v1/solve/batch", func() {
		It("returns results in request order with per-item errors", func() {
			w := do(h, http.MethodPost, "/v1/solve/batch", httpapi.BatchRequest{Items: []httpapi.SolveRequest{
				{Equation: "T(n) = 2T(n/2) + n"},
				{Equation: "garbage"},
				{Equation: "T(n) = 2T(n-1) + 1", Notation: "Ω"},
			}})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp httpapi.BatchResponse
			decode(w, &resp)
			Expect(resp.Results).To(HaveLen(3))
			Expect(resp.Results[0].Case).To(Equal("master-2a"))
			Expect(resp.Results[1].Error).NotTo(BeEmpty())
			Expect(resp.Results[1].Equation).To(Equal("garbage"))
			Expect(resp.Results[2].Method).To(Equal("Substitution Method"))
			Expect(resp.Results[2].Bound).To(HavePrefix("Ω("))
		})

		It("rejects an empty batch", func() {
			w := do(h, http.MethodPost, "/v1/solve/batch", httpapi.BatchRequest{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an oversized batch", func() {
			items := make([]httpapi.SolveRequest, httpapi.MaxBatchItems+1)
			for i := range items {
				items[i].Equation = "T(n) = 2T(n/2) + 1"
			}
			w := do(h, http.MethodPost, "/v1/solve/batch", httpapi.BatchRequest{Items: items})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /v1/classify", func() {
		It("classifies f(n)", func() {
			w := do(h, http.MethodGet, "/v1/classify?f=n%5E2", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var doc map[string]interface{}
			decode(w, &doc)
			Expect(doc).To(HaveKeyWithValue("kind", "Polynomial"))
			Expect(doc).To(HaveKeyWithValue("exponent", 2.0))
		})

		It("requires f", func() {
			w := do(h, http.MethodGet, "/v1/classify", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /v1/history", func() {
		It("rejects a bad limit", func() {
			w := do(h, http.MethodGet, "/v1/history?limit=zero", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("is empty when history is disabled", func() {
			plain := httpapi.New(httpapi.Config{}).Handler()
			do(plain, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = 2T(n/2) + n"})

			w := do(plain, http.MethodGet, "/v1/history", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("[]"))
		})
	})

	Describe("GET /metrics", func() {
		It("exposes solve counters", func() {
			do(h, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = 2T(n/2) + n"})
			do(h, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "nope"})

			w := do(h, http.MethodGet, "/metrics", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			body := w.Body.String()
			Expect(body).To(ContainSubstring(`recurrence_solves_total{method="Master Theorem (Case 2a)"} 1`))
			Expect(body).To(ContainSubstring("recurrence_solve_errors_total 1"))
			Expect(body).To(ContainSubstring("recurrence_http_request_duration_seconds"))
		})
	})

	Describe("rate limiting", func() {
		It("answers 429 once the bucket is empty", func() {
			limited := httpapi.New(httpapi.Config{Rate: 0.001, Burst: 1}).Handler()
			Expect(do(limited, http.MethodGet, "/health", nil).Code).To(Equal(http.StatusOK))

			w := do(limited, http.MethodGet, "/health", nil)
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			var resp httpapi.ErrorResponse
			decode(w, &resp)
			Expect(resp.Error).To(Equal("rate limit exceeded"))
		})
	})

	It("uses the configured default notation", func() {
		srv := httpapi.New(httpapi.Config{Notation: recurrence.BigO}).Handler()
		w := do(srv, http.MethodPost, "/v1/solve", httpapi.SolveRequest{Equation: "T(n) = 2T(n/2) + n"})
		var resp httpapi.SolveResponse
		decode(w, &resp)
		Expect(resp.Notation).To(Equal("O"))
	})
})
