// Package server initializes and runs the bookshop server.
// It builds the logger and the in-memory stores, wires the services,
// handles graceful shutdown and starts the HTTP API.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookshop/internal/logging"
	"github.com/dmitrijs2005/bookshop/internal/server/config"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookshop/internal/server/rest"
	"github.com/dmitrijs2005/bookshop/internal/server/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	flush          func() error
	userService    *services.UserService
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewApp(c *config.Config) (*App, error) {

	logger, flushFn, err := newLogger(c.LogBackend)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	seed, err := loadSeed(c.BooksFile)
	if err != nil {
		return nil, fmt.Errorf("catalog seed error: %w", err)
	}

	m, err := repomanager.NewInMemoryRepositoryManager(seed)
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}

	return &App{
		config:         c,
		logger:         logger,
		flush:          flushFn,
		userService:    services.NewUserService(m, c),
		catalogService: services.NewCatalogService(m),
		reviewService:  services.NewReviewService(m),
	}, nil
}

// newLogger returns the logger for the configured backend and a flush
// function to call before exit.
func newLogger(backend string) (logging.Logger, func() error, error) {
	switch backend {
	case "", config.LogBackendSlog:
		return logging.NewJSONLogger(os.Stdout), func() error { return nil }, nil
	case config.LogBackendZap:
		l, err := logging.NewZapProductionLogger()
		if err != nil {
			return nil, nil, err
		}
		return l, l.Sync, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

func loadSeed(path string) ([]models.Book, error) {
	if path == "" {
		return books.DefaultSeed(), nil
	}
	return books.LoadSeedFile(path)
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

	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.catalogService, app.reviewService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or the process receives SIGINT, SIGTERM
// or SIGQUIT.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr, "log_backend", app.config.LogBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	_ = app.flush()
}
