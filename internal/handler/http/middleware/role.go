package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, overtime.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, overtime.ErrManagerAccessRequired)
			return
		}

		role := overtime.Role(roleStr)
		if role != overtime.RoleManager && role != overtime.RoleOwner {
			response.HandleError(w, overtime.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
