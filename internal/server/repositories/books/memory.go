// Package books implements the catalog store: book records keyed by ISBN,
// kept in memory in seed order, together with their per-user reviews.
package books

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	books map[string]*models.Book
	order []string
}

// NewInMemoryRepository builds a catalog from seed. Seed records are copied;
// a duplicate ISBN is an error.
func NewInMemoryRepository(seed []models.Book) (*InMemoryRepository, error) {
	r := &InMemoryRepository{
		books: make(map[string]*models.Book, len(seed)),
		order: make([]string, 0, len(seed)),
	}

	for i := range seed {
		b := seed[i].Clone()
		if _, ok := r.books[b.ISBN]; ok {
			return nil, fmt.Errorf("duplicate isbn %q: %w", b.ISBN, common.ErrorAlreadyExists)
		}
		r.books[b.ISBN] = b
		r.order = append(r.order, b.ISBN)
	}

	return r, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.BookSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.BookSummary, 0, len(r.order))
	for _, isbn := range r.order {
		result = append(result, r.books[isbn].Summary())
	}

	return result, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, isbn string) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorBookNotFound
	}

	return b.Clone(), nil
}

func (r *InMemoryRepository) FindByAuthor(ctx context.Context, author string) ([]*models.Book, error) {
	return r.find(func(b *models.Book) string { return b.Author }, author), nil
}

func (r *InMemoryRepository) FindByTitle(ctx context.Context, title string) ([]*models.Book, error) {
	return r.find(func(b *models.Book) string { return b.Title }, title), nil
}

// find returns copies of all books whose field contains substr, ignoring case.
// The result is never nil.
func (r *InMemoryRepository) find(field func(*models.Book) string, substr string) []*models.Book {
	needle := strings.ToLower(substr)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Book, 0)
	for _, isbn := range r.order {
		b := r.books[isbn]
		if strings.Contains(strings.ToLower(field(b)), needle) {
			result = append(result, b.Clone())
		}
	}

	return result
}

func (r *InMemoryRepository) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorBookNotFound
	}

	return models.CloneReviews(b.Reviews), nil
}

// PutReview sets userName's review on the book, replacing any previous one.
func (r *InMemoryRepository) PutReview(ctx context.Context, isbn, userName, text string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorBookNotFound
	}

	if b.Reviews == nil {
		b.Reviews = make(map[string]string)
	}
	b.Reviews[userName] = text

	return models.CloneReviews(b.Reviews), nil
}

func (r *InMemoryRepository) DeleteReview(ctx context.Context, isbn, userName string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorBookNotFound
	}

	if _, ok := b.Reviews[userName]; !ok {
		return nil, common.ErrorReviewNotFound
	}
	delete(b.Reviews, userName)

	return models.CloneReviews(b.Reviews), nil
}
