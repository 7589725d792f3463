package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chime/internal/config"
	"chime/internal/logging"
	"chime/internal/notify"
)

// Dispatcher performs the actions a normalized request asks for.
type Dispatcher interface {
	Dispatch(ctx context.Context, req notify.Request) notify.Result
}

// Server hosts the notification HTTP API.
type Server struct {
	bind       string
	maxMessage int
	dispatcher Dispatcher
	logger     *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New constructs a server bound per cfg.
func New(cfg *config.Config, dispatcher Dispatcher, logger *slog.Logger) (*Server, error) {
	if cfg == nil || dispatcher == nil {
		return nil, errors.New("server requires config and dispatcher")
	}

	srv := &Server{
		bind:       cfg.BindAddress(),
		maxMessage: cfg.Notify.MaxMessageLength,
		dispatcher: dispatcher,
		logger:     logging.WithComponent(logger, "server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/notify", srv.handleNotify)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Handler:           srv.recoverPanics(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start begins serving and shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Args(logging.Error(err))...)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", logging.Args(logging.String("address", listener.Addr().String()))...)
	return nil
}

// Stop shuts the server down immediately.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound address, useful when the port was chosen by the OS.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var (
		req notify.Request
		err error
	)
	switch r.Method {
	case http.MethodPost:
		req, err = notify.ParseJSON(r.Body, s.maxMessage)
	case http.MethodGet:
		req, err = notify.ParseQuery(r.URL.Query(), s.maxMessage)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Actions run to completion or timeout even if the caller hangs up;
	// there is no cancellation propagation for dispatched audio.
	result := s.dispatcher.Dispatch(context.WithoutCancel(r.Context()), req)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recoverPanics keeps an unexpected fault scoped to its request; the server
// process never exits because one dispatch blew up.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic while handling request",
					logging.Args(
						logging.String("path", r.URL.Path),
						logging.Any("panic", rec),
					)...)
				s.writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Args(logging.Error(err))...)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
