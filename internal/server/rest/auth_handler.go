package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookshop/internal/common"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgCredentialsMissing)
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, msgUserExists)
		default:
			s.writeInternal(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.UserName)
	writeJSON(w, http.StatusCreated, registerResponse{Message: msgUserRegistered, Username: user.UserName})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: msgLoginSuccessful, Token: token})
}
