package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin admits both elevated roles. Approval endpoints use it so
// managers can decide leave and punches without full admin rights.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != string(user.RoleAdmin) && role != string(user.RoleManager)) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
