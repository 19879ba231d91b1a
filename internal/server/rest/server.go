// Package rest exposes the bookshop services over JSON/HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/logging"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]models.BookSummary, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]*models.Book, error)
	FindByTitle(ctx context.Context, title string) ([]*models.Book, error)
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)
}

type ReviewService interface {
	UpsertReview(ctx context.Context, isbn, username, text string) (map[string]string, error)
	DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error)
}

type Server struct {
	address string
	users   UserService
	catalog CatalogService
	reviews ReviewService
	logger  logging.Logger
	router  chi.Router
}

func NewServer(a string, l logging.Logger, us UserService, cs CatalogService, rs ReviewService) *Server {
	s := &Server{
		address: a,
		logger:  l.With("module", "rest_server"),
		users:   us,
		catalog: cs,
		reviews: rs,
	}
	s.router = s.routes()
	return s
}

// Handler returns the routed HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
	s.logRoutes(ctx)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) logRoutes(ctx context.Context) {
	_ = chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		s.logger.Info(ctx, "Available endpoint", "method", method, "route", route)
		return nil
	})
}
