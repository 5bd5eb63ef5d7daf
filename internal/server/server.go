package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/bloglist/internal/interfaces"
)

var (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 10 * time.Second
	IdleTimeout     = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
)

type Server struct {
	Port   string
	Host   string
	server *http.Server
	Logger interfaces.Logger
}

// NewServer creates a new Server instance serving the given handler on
// host:port.
func NewServer(host, port string, handler http.Handler, logger interfaces.Logger) interfaces.Server {
	server := &http.Server{
		Addr:         host + ":" + port,
		Handler:      handler,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: server,
		Logger: logger,
	}
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
