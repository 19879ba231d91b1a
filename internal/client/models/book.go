// Package models holds the JSON shapes the bookshop API sends and receives.
package models

type BookSummary struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

type Reviews struct {
	ISBN    string            `json:"isbn"`
	Reviews map[string]string `json:"reviews"`
}

// ReviewMutation is the answer to adding, modifying or deleting a review.
type ReviewMutation struct {
	Message string            `json:"message"`
	ISBN    string            `json:"isbn"`
	Reviews map[string]string `json:"reviews"`
}
