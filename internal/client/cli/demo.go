package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookshop/internal/client/client"
	"golang.org/x/sync/errgroup"
)

func (a *App) allBooks(ctx context.Context) {
	list, err := a.client.ListBooks(ctx)
	a.print("All books", list, err)
}

// concurrentLookups runs the ISBN and title lookups side by side. Results
// are printed in completion order.
func (a *App) concurrentLookups(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		book, err := a.client.GetByISBN(gctx, a.config.ISBN)
		a.print("Book by ISBN "+a.config.ISBN, book, err)
		return nil
	})

	g.Go(func() error {
		books, err := a.client.FindByTitle(gctx, a.config.Title)
		a.print("Books by title "+a.config.Title, books, err)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (a *App) byAuthor(ctx context.Context) {
	books, err := a.client.FindByAuthor(ctx, a.config.Author)
	a.print("Books by author "+a.config.Author, books, err)
}

// reviewScenario registers the configured user (an existing account is
// fine), logs in and adds then removes a review on the configured ISBN.
func (a *App) reviewScenario(ctx context.Context) {
	username, password := a.config.Username, a.config.Password

	err := a.client.Register(ctx, username, password)
	if errors.Is(err, client.ErrConflict) {
		err = nil
	}
	a.print("Register "+username, nil, err)
	if err != nil {
		return
	}

	err = a.client.Login(ctx, username, password)
	a.print("Login "+username, nil, err)
	if err != nil {
		return
	}

	added, err := a.client.PutReview(ctx, a.config.ISBN, "Read it twice.")
	a.print("Add review", added, err)

	reviews, err := a.client.GetReviews(ctx, a.config.ISBN)
	a.print("Reviews", reviews, err)

	deleted, err := a.client.DeleteReview(ctx, a.config.ISBN)
	a.print("Delete review", deleted, err)
}
