package client

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/client/models"
)

type Client interface {
	Health(ctx context.Context) error
	ListBooks(ctx context.Context) ([]models.BookSummary, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]models.Book, error)
	FindByTitle(ctx context.Context, title string) ([]models.Book, error)
	GetReviews(ctx context.Context, isbn string) (*models.Reviews, error)
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	PutReview(ctx context.Context, isbn, text string) (*models.ReviewMutation, error)
	DeleteReview(ctx context.Context, isbn string) (*models.ReviewMutation, error)
}
