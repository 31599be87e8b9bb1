package middleware

import (
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePermission lets the request through when the role in the token's
// rol claim grants permission.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			roleStr, ok := claims["rol"].(string)
			if !ok || !user.HasPermission(user.Role(roleStr), permission) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin guards deletes.
func RequireAdmin(next http.Handler) http.Handler {
	return RequirePermission(user.PermissionRecordsDelete)(next)
}

// RequireStaff guards writes, open to admins and supervisors.
func RequireStaff(next http.Handler) http.Handler {
	return RequirePermission(user.PermissionRecordsManage)(next)
}
