// Package models defines server-side data models kept in the in-memory stores.
package models

import "maps"

// Book is a catalog record keyed by ISBN. Reviews maps a username to the text
// of that user's single review.
type Book struct {
	ISBN    string            `json:"isbn" yaml:"isbn"`
	Title   string            `json:"title" yaml:"title"`
	Author  string            `json:"author" yaml:"author"`
	Reviews map[string]string `json:"reviews" yaml:"reviews"`
}

// BookSummary is the reviews-free projection of a Book used for listings.
type BookSummary struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Summary returns the listing projection of b.
func (b *Book) Summary() BookSummary {
	return BookSummary{ISBN: b.ISBN, Title: b.Title, Author: b.Author}
}

// Clone returns a deep copy of b, so callers never share the reviews map
// with the store. A nil reviews map is returned as an empty one.
func (b *Book) Clone() *Book {
	c := *b
	c.Reviews = CloneReviews(b.Reviews)
	return &c
}

// CloneReviews copies a reviews map; the result is never nil.
func CloneReviews(r map[string]string) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	return maps.Clone(r)
}
