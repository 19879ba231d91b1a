package books

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) *InMemoryRepository {
	t.Helper()
	r, err := NewInMemoryRepository(DefaultSeed())
	require.NoError(t, err)
	return r
}

func TestNewInMemoryRepository_DuplicateISBN(t *testing.T) {
	_, err := NewInMemoryRepository([]models.Book{{ISBN: "1"}, {ISBN: "1"}})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestNewInMemoryRepository_DoesNotAliasSeed(t *testing.T) {
	seed := DefaultSeed()
	r, err := NewInMemoryRepository(seed)
	require.NoError(t, err)

	seed[0].Reviews["mallory"] = "sneaky"

	reviews, err := r.Reviews(context.Background(), "9780143127741")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Eye-opening!"}, reviews)
}

func TestList_SummariesInSeedOrder(t *testing.T) {
	r := newSeeded(t)

	list, err := r.List(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, models.BookSummary{
		ISBN:   "9780143127741",
		Title:  "Sapiens: A Brief History of Humankind",
		Author: "Yuval Noah Harari",
	}, list[0])
	assert.Equal(t, "9780131103627", list[1].ISBN)
	assert.Equal(t, "9780262033848", list[2].ISBN)
}

func TestGet(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	b, err := r.Get(ctx, "9780143127741")
	require.NoError(t, err)
	assert.Equal(t, "Yuval Noah Harari", b.Author)
	assert.Equal(t, "Eye-opening!", b.Reviews["alice"])

	b.Reviews["alice"] = "changed"
	again, err := r.Get(ctx, "9780143127741")
	require.NoError(t, err)
	assert.Equal(t, "Eye-opening!", again.Reviews["alice"], "Get must return a copy")

	_, err = r.Get(ctx, "0000000000")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByAuthorAndTitle(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		find  func(context.Context, string) ([]*models.Book, error)
		query string
		want  []string
	}{
		{name: "author lower case", find: r.FindByAuthor, query: "harari", want: []string{"9780143127741"}},
		{name: "author mixed case partial", find: r.FindByAuthor, query: "KERNI", want: []string{"9780131103627"}},
		{name: "author no match", find: r.FindByAuthor, query: "tolkien", want: []string{}},
		{name: "title exact lower", find: r.FindByTitle, query: "introduction to algorithms", want: []string{"9780262033848"}},
		{name: "title common substring", find: r.FindByTitle, query: "the", want: []string{"9780131103627"}},
		{name: "title empty matches all", find: r.FindByTitle, query: "", want: []string{"9780143127741", "9780131103627", "9780262033848"}},
		{name: "title not tokenized", find: r.FindByTitle, query: "algorithms introduction", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.find(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, got)

			isbns := make([]string, 0, len(got))
			for _, b := range got {
				isbns = append(isbns, b.ISBN)
			}
			assert.Equal(t, tt.want, isbns)
		})
	}
}

func TestReviews(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	reviews, err := r.Reviews(ctx, "9780131103627")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	_, err = r.Reviews(ctx, "0000000000")
	assert.ErrorIs(t, err, common.ErrorBookNotFound)
}

func TestPutReview_AddAndOverwrite(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	reviews, err := r.PutReview(ctx, "9780143127741", "bob", "first")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Eye-opening!", "bob": "first"}, reviews)

	reviews, err = r.PutReview(ctx, "9780143127741", "bob", "second")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Eye-opening!", "bob": "second"}, reviews)

	_, err = r.PutReview(ctx, "0000000000", "bob", "x")
	assert.ErrorIs(t, err, common.ErrorBookNotFound)
}

func TestPutReview_NilReviewsMap(t *testing.T) {
	r, err := NewInMemoryRepository([]models.Book{{ISBN: "1", Title: "T", Author: "A"}})
	require.NoError(t, err)

	reviews, err := r.PutReview(context.Background(), "1", "bob", "ok")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "ok"}, reviews)
}

func TestDeleteReview(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	_, err := r.PutReview(ctx, "9780143127741", "bob", "mine")
	require.NoError(t, err)

	reviews, err := r.DeleteReview(ctx, "9780143127741", "bob")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Eye-opening!"}, reviews)

	_, err = r.DeleteReview(ctx, "9780143127741", "bob")
	assert.ErrorIs(t, err, common.ErrorReviewNotFound)

	_, err = r.DeleteReview(ctx, "0000000000", "bob")
	assert.ErrorIs(t, err, common.ErrorBookNotFound)
}

func TestPutReview_ConcurrentUsersNoLostUpdate(t *testing.T) {
	r := newSeeded(t)
	ctx := context.Background()

	users := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"}
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			_, err := r.PutReview(ctx, "9780262033848", u, "review by "+u)
			assert.NoError(t, err)
		}(u)
	}
	wg.Wait()

	reviews, err := r.Reviews(ctx, "9780262033848")
	require.NoError(t, err)
	assert.Len(t, reviews, len(users))
}
