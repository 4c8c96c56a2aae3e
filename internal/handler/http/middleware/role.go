package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/response"
)

func claimedRole(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireAdmin admits any administrative role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimedRole(r)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		for _, admin := range user.AdminRoles() {
			if role == admin {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.HandleError(w, user.ErrAdminPrivilegeRequired)
	})
}

// RequireBroadcaster admits the roles allowed to post announcements;
// Manager_Admin can read admin views but not broadcast.
func RequireBroadcaster(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimedRole(r)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if role != user.RoleAdmin && role != user.RoleHRAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
