package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookshop/internal/common"
)

// bearerToken extracts the token from "Authorization: Bearer <token>". Any
// other header shape yields "".
func bearerToken(r *http.Request) string {
	header := r.Header.Get(common.AuthorizationHeaderName)
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate resolves the request's bearer token to a username. Protected
// handlers call it first and use only the returned identity.
func (s *Server) authenticate(r *http.Request) (string, error) {
	return s.users.Authenticate(r.Context(), bearerToken(r))
}

// writeAuthError answers a failed authenticate: 401 when no token was sent,
// 403 when the token did not verify.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, msgTokenMissing)
	case errors.Is(err, common.ErrorForbidden):
		s.logger.Debug(r.Context(), "rejected token", "error", err)
		writeMessage(w, http.StatusForbidden, msgInvalidToken)
	default:
		s.writeInternal(w, r, err)
	}
}
