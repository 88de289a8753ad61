// Package httpapi exposes the registration and login use cases over HTTP
// JSON and formats every failure into a uniform error body.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/avolkovs/todolist/internal/logging"
	"github.com/avolkovs/todolist/internal/server/auth"
	"github.com/avolkovs/todolist/internal/server/users"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	auth    *auth.Service
}

func NewServer(address string, l logging.Logger, us *users.Service, as *auth.Service) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		auth:    as,
	}
}

// Handler builds the route table wrapped with the logging and recovery
// middleware. Exposed separately so tests can drive it via httptest.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.POST("/user", s.handleCreateUser)
	router.GET("/user", s.handleWhoami)
	router.POST("/auth/login", s.handleLogin)
	router.GET("/ping", s.handlePing)

	return s.withLogging(s.withRecovery(router))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
