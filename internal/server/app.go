// Package server initializes and runs the main application server.
// It opens the user store, wires the registration and login services, and
// starts the HTTP endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avolkovs/todolist/internal/logging"
	"github.com/avolkovs/todolist/internal/server/auth"
	"github.com/avolkovs/todolist/internal/server/config"
	"github.com/avolkovs/todolist/internal/server/httpapi"
	"github.com/avolkovs/todolist/internal/server/storage"
	"github.com/avolkovs/todolist/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       storage.Store
	userService *users.Service
	authService *auth.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(c.LogLevel),
	}))
	logger := logging.NewSlogLogger(sl)

	store, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(store.Users())
	as := auth.NewService(store.Users(), c)

	return &App{config: c, logger: logger, store: store, userService: us, authService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.Address, app.logger, app.userService, app.authService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err.Error())
	}
}
