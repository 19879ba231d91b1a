package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", s.listBooks)
		r.Get("/isbn/{isbn}", s.getBookByISBN)
		r.Get("/author/{author}", s.findBooksByAuthor)
		r.Get("/title/{title}", s.findBooksByTitle)
		r.Get("/review/{isbn}", s.getBookReviews)
	})

	r.Post("/register", s.register)
	r.Post("/login", s.login)

	r.Route("/auth/review/{isbn}", func(r chi.Router) {
		r.Put("/", s.putReview)
		r.Delete("/", s.deleteReview)
	})

	return r
}
