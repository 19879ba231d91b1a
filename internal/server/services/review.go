package services

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/repomanager"
)

// ReviewService mutates a single user's review on a book. The username must
// come from UserService.Authenticate, never from request input.
type ReviewService struct {
	repomanager repomanager.RepositoryManager
}

func NewReviewService(m repomanager.RepositoryManager) *ReviewService {
	return &ReviewService{repomanager: m}
}

// UpsertReview adds the user's review or replaces their previous one and
// returns the book's updated reviews.
func (s *ReviewService) UpsertReview(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	if username == "" {
		return nil, common.ErrorUnauthorized
	}
	if text == "" {
		return nil, common.ErrorValidation
	}

	return s.repomanager.Books().PutReview(ctx, isbn, username, text)
}

// DeleteReview removes the user's review and returns the book's remaining
// reviews. Both an unknown book and a missing review match
// common.ErrorNotFound.
func (s *ReviewService) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	if username == "" {
		return nil, common.ErrorUnauthorized
	}

	return s.repomanager.Books().DeleteReview(ctx, isbn, username)
}
