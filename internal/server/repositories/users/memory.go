// Package users implements the identity store: registered users keyed by
// username together with their password hashes.
package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/auth"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Exists(ctx context.Context, userName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userName]
	return ok, nil
}

// Create stores a copy of user under its username and returns another copy
// with ID and CreatedAt filled in. The existence check and the insert
// happen under one lock, so two concurrent registrations of the same name
// cannot both succeed.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, fmt.Errorf("user %q: %w", user.UserName, common.ErrorAlreadyExists)
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.users[stored.UserName] = stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &user, nil
}

// Verify compares password with the stored hash. An unknown user and a wrong
// password both yield false.
func (r *InMemoryRepository) Verify(ctx context.Context, userName string, password string) (bool, error) {
	user, err := r.GetUserByLogin(ctx, userName)
	if err != nil {
		return false, nil
	}

	return auth.VerifyPassword(user.PasswordHash, password), nil
}
