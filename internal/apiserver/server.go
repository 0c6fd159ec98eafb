package apiserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	servertiming "github.com/mitchellh/go-server-timing"
)

// Server is the mock ingestion service. It validates incoming entities
// against the payload contract and delegates storage to a Store.
type Server struct {
	store  Store
	logger *slog.Logger
	mux    *http.ServeMux
}

// New builds a Server around the given store. A nil logger falls back to
// slog.Default().
func New(store Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger, mux: http.NewServeMux()}

	s.mux.HandleFunc("POST /users", s.ingest(KindUsers, validateUser))
	s.mux.HandleFunc("POST /orders", s.ingest(KindOrders, validateOrder))
	s.mux.HandleFunc("POST /reviews", s.ingest(KindReviews, validateReview))
	s.mux.HandleFunc("GET /stats", s.handleStats)
	s.mux.HandleFunc("POST /reset", s.handleReset)

	return s
}

// Handler returns the full middleware chain: request id, request logging,
// and Server-Timing instrumentation around the routed handlers.
func (s *Server) Handler() http.Handler {
	return servertiming.Middleware(s.requestLog(s.mux), nil)
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// ingest returns a handler that validates one entity record and appends it.
func (s *Server) ingest(kind string, validate func(json.RawMessage) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
			return
		}
		if err := validate(raw); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		var metric *servertiming.Metric
		if timing := servertiming.FromContext(r.Context()); timing != nil {
			metric = timing.NewMetric("store").Start()
		}
		count, err := s.store.Append(kind, raw)
		if metric != nil {
			metric.Stop()
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "count": count})
	}
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	counts, err := s.store.Counts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	if err := s.store.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
