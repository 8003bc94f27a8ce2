package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Status is reported by /status.
type Status struct {
	Animation    string        `json:"animation"`
	Duration     time.Duration `json:"durationNs"`
	DurationHint time.Duration `json:"durationHintNs"`
	Children     int           `json:"children"`
	HasAlpha     bool          `json:"hasAlpha"`
	Pixels       int           `json:"pixels"`
	FrameRate    float64       `json:"frameRate"`
	Uptime       time.Duration `json:"uptimeNs"`
	Description  string        `json:"description,omitempty"`
}

// StatusFunc returns the current status.
type StatusFunc func() Status

// Server serves the web client, metrics and status.
type Server struct {
	addr   string
	static string
	status StatusFunc
	log    *slog.Logger
}

// NewServer creates a Server.
func NewServer(addr, static string, status StatusFunc, logger *slog.Logger) *Server {
	return &Server{
		addr:   addr,
		static: static,
		status: status,
		log:    logger.With("component", "api"),
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.static)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/status", s.handleStatus)
	return mux
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status()); err != nil {
		s.log.Warn("write status", "error", err)
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve %s: %w", s.addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
