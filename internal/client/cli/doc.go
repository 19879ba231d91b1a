// Package cli runs the bookshop demonstration against a live server.
//
// The run lists every book, then fires the ISBN and title lookups
// concurrently, then searches by author. Each result, or the error that
// replaced it, is printed as indented JSON. With Config.Review set it goes
// on to register, log in, add a review and delete it again.
package cli
