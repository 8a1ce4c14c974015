// Package server exposes the binary-conversion core and naive oracle over
// HTTP: POST /compute runs arithop.Compute (and, when requested, validates
// it against arithop.NaiveCompute), GET /metrics serves Prometheus metrics,
// and every response passes through SecurityMiddleware. This is an
// additional, optional collaborator around internal/arithop's Compute entry
// point; it is not part of the computational core itself.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/logging"
	"github.com/agbru/bigradix/internal/validate"
)

var errInvalidOperator = errors.New("op must be exactly one character: +, -, or *")

// Server is the HTTP front end for the arithmetic core.
type Server struct {
	addr     string
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger
	http     *http.Server
}

// New builds a Server listening on addr, with the given security policy
// (DefaultSecurityConfig if zero-valued security is not desired).
func New(addr string, security SecurityConfig, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	s := &Server{
		addr:     addr,
		security: security,
		metrics:  NewMetrics(),
		logger:   logger,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/compute", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleCompute)))
	mux.HandleFunc("/metrics", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleMetrics)))
	s.http = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe starts the HTTP server and blocks until it stops or ctx is
// canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.requestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
		next(w, r)
	}
}

// computeRequest is the JSON body POST /compute accepts.
type computeRequest struct {
	Base     int    `json:"base"`
	Alphabet string `json:"alphabet"`
	Z1       string `json:"z1"`
	Z2       string `json:"z2"`
	Op       string `json:"op"`
	UseSIMD  bool   `json:"use_simd"`
	Verify   bool   `json:"verify"`
}

type computeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeComputeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Op) != 1 {
		writeComputeError(w, http.StatusBadRequest, errInvalidOperator)
		return
	}
	if max := s.security.MaxNValue; max > 0 {
		if n := int64(len(req.Z1)); n > max {
			writeComputeError(w, http.StatusRequestEntityTooLarge, apperrors.MemoryError{Requested: uint64(n), Available: uint64(max), Limit: uint64(max)})
			return
		}
		if n := int64(len(req.Z2)); n > max {
			writeComputeError(w, http.StatusRequestEntityTooLarge, apperrors.MemoryError{Requested: uint64(n), Available: uint64(max), Limit: uint64(max)})
			return
		}
	}

	start := time.Now()
	results := validate.Run(req.Base, []byte(req.Alphabet), req.Z1, req.Z2, req.Op[0], req.UseSIMD, req.Verify, s.logger)
	s.metrics.ObserveCompute(req.Op[0], req.Base, time.Since(start))

	value, err := validate.Compare(results)
	if err != nil {
		writeComputeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(computeResponse{Result: value})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func writeComputeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(computeResponse{Error: err.Error()})
}

