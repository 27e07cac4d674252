package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/auth"
	"github.com/quickcart/payroll-backend-go/internal/handler/http/response"
)

// AuthRequired accepts only verified access tokens. It runs after
// jwtauth.Verifier has placed the token in the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
