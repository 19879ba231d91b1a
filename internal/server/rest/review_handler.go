package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookshop/internal/common"
)

func (s *Server) putReview(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	isbn := pathParam(r, "isbn")

	reviews, err := s.reviews.UpsertReview(r.Context(), isbn, username, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgReviewTextRequired)
		case errors.Is(err, common.ErrorNotFound):
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
		default:
			s.writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, reviewMutationResponse{Message: msgReviewSaved, ISBN: isbn, Reviews: reviews})
}

func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	isbn := pathParam(r, "isbn")

	reviews, err := s.reviews.DeleteReview(r.Context(), isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorReviewNotFound):
			writeMessage(w, http.StatusNotFound, msgReviewNotFound)
		case errors.Is(err, common.ErrorNotFound):
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
		default:
			s.writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, reviewMutationResponse{Message: msgReviewDeleted, ISBN: isbn, Reviews: reviews})
}
