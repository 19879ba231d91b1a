package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	books *books.InMemoryRepository
	users *users.InMemoryRepository
}

func (m *InMemoryRepositoryManager) Books() books.Repository {
	return m.books
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

// NewInMemoryRepositoryManager creates the catalog from seed and an empty
// identity store.
func NewInMemoryRepositoryManager(seed []models.Book) (RepositoryManager, error) {
	b, err := books.NewInMemoryRepository(seed)
	if err != nil {
		return nil, fmt.Errorf("books repo creation error: %w", err)
	}

	return &InMemoryRepositoryManager{
		books: b,
		users: users.NewInMemoryRepository(),
	}, nil
}
