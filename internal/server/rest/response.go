package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	msgBookNotFound       = "Book not found"
	msgReviewNotFound     = "Review by user not found"
	msgCredentialsMissing = "username and password required"
	msgUserExists         = "User already exists"
	msgUserRegistered     = "User registered"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginSuccessful    = "Login successful"
	msgReviewTextRequired = "Review text required"
	msgReviewSaved        = "Review added/modified"
	msgReviewDeleted      = "Review deleted"
	msgTokenMissing       = "Token missing"
	msgInvalidToken       = "Invalid token"
	msgInvalidBody        = "Invalid JSON body"
	msgInternal           = "internal error"
)

type messageResponse struct {
	Message string `json:"message"`
}

type booksResponse[T any] struct {
	Books []T `json:"books"`
}

type reviewsResponse struct {
	ISBN    string            `json:"isbn"`
	Reviews map[string]string `json:"reviews"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type reviewRequest struct {
	Review string `json:"review"`
}

type reviewMutationResponse struct {
	Message string            `json:"message"`
	ISBN    string            `json:"isbn"`
	Reviews map[string]string `json:"reviews"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, messageResponse{Message: msg})
}

// decodeJSON reads the request body into v. An empty body leaves v at its
// zero value, so presence checks report the missing fields.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeMessage(w, http.StatusInternalServerError, msgInternal)
}
