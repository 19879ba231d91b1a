package users

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

type Repository interface {
	Exists(ctx context.Context, userName string) (bool, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
	Verify(ctx context.Context, userName string, password string) (bool, error)
}
