package rest

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded value of a route parameter. chi matches on
// the raw path when the URL carries escapes that Path cannot represent.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListAll(r.Context())
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, booksResponse[models.BookSummary]{Books: list})
}

func (s *Server) getBookByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := s.catalog.GetByISBN(r.Context(), pathParam(r, "isbn"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (s *Server) findBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	found, err := s.catalog.FindByAuthor(r.Context(), pathParam(r, "author"))
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, booksResponse[*models.Book]{Books: found})
}

func (s *Server) findBooksByTitle(w http.ResponseWriter, r *http.Request) {
	found, err := s.catalog.FindByTitle(r.Context(), pathParam(r, "title"))
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, booksResponse[*models.Book]{Books: found})
}

func (s *Server) getBookReviews(w http.ResponseWriter, r *http.Request) {
	isbn := pathParam(r, "isbn")

	reviews, err := s.catalog.GetReviews(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewsResponse{ISBN: isbn, Reviews: reviews})
}
