package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/auth"
)

// sessionUserID extracts the authenticated user's id from the verified
// token claims. Routes using it sit behind the auth middleware, so a
// missing claim means a malformed token, not an unauthenticated request.
func sessionUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
