// Package httpapi exposes token analysis over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tokenScope/internal/address"
	"tokenScope/internal/analysis"
	"tokenScope/internal/dexscreener"
	"tokenScope/internal/render"
)

// Options configures a Server.
type Options struct {
	Version string
	// Registry receives the API collectors. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// Server routes API requests to an analysis.Analyzer.
type Server struct {
	analyzer analysis.Analyzer
	metrics  *Metrics
	registry *prometheus.Registry
	version  string
	logger   *zap.Logger
	router   *mux.Router
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewServer builds the router and registers metrics.
func NewServer(analyzer analysis.Analyzer, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		analyzer: analyzer,
		metrics:  NewMetrics(reg),
		registry: reg,
		version:  opts.Version,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware(s.logger), loggingMiddleware(s.logger))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/tokens/{address}/score", s.handleScore).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: "Route not found."})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["address"]

	start := time.Now()
	report, err := s.analyzer.Analyze(r.Context(), raw)
	code := errorCode(err)
	s.metrics.observe(code, time.Since(start))

	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Warn("analysis failed", zap.String("address", raw), zap.Error(err))
		}
		writeJSON(w, status, errorResponse{Error: code, Message: analysis.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, render.NewRecord(report))
}

// errorCode is the stable machine-readable name of err, "ok" for nil.
func errorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, address.ErrEmpty):
		return "empty_address"
	case errors.Is(err, address.ErrInvalid):
		return "invalid_address"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	}
	if kind, ok := dexscreener.KindOf(err); ok {
		return string(kind)
	}
	return "internal"
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, address.ErrEmpty), errors.Is(err, address.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, dexscreener.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, dexscreener.ErrHTTPStatus), errors.Is(err, dexscreener.ErrParse):
		return http.StatusBadGateway
	case errors.Is(err, dexscreener.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
