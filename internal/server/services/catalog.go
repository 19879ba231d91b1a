package services

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/repomanager"
)

// CatalogService serves read-only catalog lookups. Lookups of an unknown
// ISBN return an error matching common.ErrorNotFound; searches without
// matches return an empty slice.
type CatalogService struct {
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{repomanager: m}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]models.BookSummary, error) {
	return s.repomanager.Books().List(ctx)
}

func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return s.repomanager.Books().Get(ctx, isbn)
}

func (s *CatalogService) FindByAuthor(ctx context.Context, author string) ([]*models.Book, error) {
	return s.repomanager.Books().FindByAuthor(ctx, author)
}

func (s *CatalogService) FindByTitle(ctx context.Context, title string) ([]*models.Book, error) {
	return s.repomanager.Books().FindByTitle(ctx, title)
}

func (s *CatalogService) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	return s.repomanager.Books().Reviews(ctx, isbn)
}
