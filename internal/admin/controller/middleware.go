package controller

import (
	"net/http"

	apperrors "karsamrit/internal/errors"
)

// RequireAdmin guards admin-only routes by resolving the bearer token
// before the wrapped handler runs.
func (c *AuthController) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := c.sessions.Validate(r.Header.Get(TokenHeader)); err != nil {
			message := "Invalid or expired admin session"
			if ae, ok := apperrors.IsAuthError(err); ok {
				message = ae.Message
			}
			c.writeError(w, http.StatusUnauthorized, message)
			return
		}

		next.ServeHTTP(w, r)
	})
}
