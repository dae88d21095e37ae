// Package server exposes the determinant engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/katalvlaran/detrace/determinant"
	"github.com/katalvlaran/detrace/internal/input"
	"github.com/katalvlaran/detrace/internal/logging"
	"github.com/katalvlaran/detrace/internal/metrics"
	"github.com/katalvlaran/detrace/internal/render"
)

// MaxBodyBytes caps a request document.
const MaxBodyBytes = 1 << 20

// Metric labels for requests without a usable method.
const (
	methodNone    = "none"
	methodUnknown = "unknown"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// MethodInfo describes one entry of GET /v1/methods.
type MethodInfo struct {
	Name   determinant.Method `json:"name"`
	Title  string             `json:"title"`
	Orders []int              `json:"orders"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler wires the routes. A nil logger or metrics set is replaced by a
// no-op logger and a fresh private registry.
func NewHandler(logger *slog.Logger, m *metrics.Metrics) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	s := &Server{Logger: logger, Metrics: m}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.Health)
	r.Handle("/metrics", m.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/methods", s.ListMethods)
		r.Post("/determinant", s.ComputeDeterminant)
	})

	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// ListMethods handles GET /v1/methods.
func (s *Server) ListMethods(w http.ResponseWriter, r *http.Request) {
	all := determinant.Methods()
	out := make([]MethodInfo, len(all))
	for i, m := range all {
		out[i] = MethodInfo{Name: m, Title: render.Title(m), Orders: supportedOrders(m)}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// ComputeDeterminant handles POST /v1/determinant.
func (s *Server) ComputeDeterminant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := input.Decode(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.Metrics.Observe(methodNone, metrics.OutcomeInvalidInput, 0, 0)
		s.Logger.Warn("determinant: invalid request body", "error", err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	label := methodLabel(req.Method)

	policy, err := determinant.ParseChioPolicy(req.ChioPolicy)
	if err != nil {
		s.Metrics.Observe(label, metrics.OutcomeInvalidInput, 0, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	method, err := determinant.ParseMethod(req.Method)
	if err != nil && !req.Legacy {
		s.Metrics.Observe(label, metrics.OutcomeUnknownMethod, 0, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := []determinant.Option{
		determinant.WithOrderBounds(determinant.MinOrder, determinant.MaxOrder),
		determinant.WithChioPolicy(policy),
		determinant.WithLogger(s.Logger),
	}
	if req.Legacy {
		opts = append(opts, determinant.WithLegacyFallback())
	}

	res, err := determinant.Compute(req.Matrix, method, opts...)
	switch {
	case errors.Is(err, determinant.ErrUnknownMethod):
		s.Metrics.Observe(label, metrics.OutcomeUnknownMethod, 0, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.Metrics.Observe(label, metrics.OutcomeInvalidInput, 0, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if !res.Method.Valid() {
		// legacy fallback answered an unknown method with the empty result
		s.Metrics.Observe(label, metrics.OutcomeUnknownMethod, 0, 0)
	} else {
		s.Metrics.Observe(label, metrics.OutcomeOK, res.Order, time.Since(start))
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// writeJSON encodes v before touching the response, so an encoding failure
// still becomes a 500 with a JSON error body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.Logger.Error("response encode failed", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "response encoding failed"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.Logger.Debug("response write failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// methodLabel keeps the metric label set bounded.
func methodLabel(tag string) string {
	m, err := determinant.ParseMethod(tag)
	if err != nil {
		return methodUnknown
	}

	return m.String()
}

// supportedOrders lists the orders a method accepts within the presentation bounds.
func supportedOrders(m determinant.Method) []int {
	if m == determinant.Sarrus {
		return []int{2, 3}
	}
	out := make([]int, 0, determinant.MaxOrder-determinant.MinOrder+1)
	for n := determinant.MinOrder; n <= determinant.MaxOrder; n++ {
		out = append(out, n)
	}

	return out
}
