package books

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.BookSummary, error)
	Get(ctx context.Context, isbn string) (*models.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]*models.Book, error)
	FindByTitle(ctx context.Context, title string) ([]*models.Book, error)
	Reviews(ctx context.Context, isbn string) (map[string]string, error)
	PutReview(ctx context.Context, isbn, userName, text string) (map[string]string, error)
	DeleteReview(ctx context.Context, isbn, userName string) (map[string]string, error)
}
