// Package repomanager groups the stores the services work against, so they
// are created once at startup and handed to every service explicitly.
package repomanager

import (
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/users"
)

type RepositoryManager interface {
	Books() books.Repository
	Users() users.Repository
}
