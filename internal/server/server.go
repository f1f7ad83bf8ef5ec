package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"task-server/internal/config"
	"task-server/internal/services"
)

// Server wraps the HTTP server bound to the task API.
type Server struct {
	httpAddr        string
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New builds the router, attaches the middleware chain, and prepares an
// HTTP server from the supplied configuration. Nothing listens until
// ListenAndServe is called.
func New(cfg *config.Config, service services.TaskService) *Server {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware, recoverMiddleware)
	RegisterRoutes(router, NewTaskController(service))

	return &Server{
		httpAddr: cfg.ListenAddr(),
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           router,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// Handler returns the configured root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	log.Printf("task server listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
