package middleware

import "net/http"

// RequireUser guards operations that need an authenticated identity.
// Anonymous visitors are redirected to the login page, never shown an
// error.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if !sess.Authenticated() {
			sess.Flash("Please log in to continue")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
