package middleware

import (
	"net/http"

	"github.com/motormart/motormart-backend/internal/flash"
)

const loginPath = "/account/login"

// RequireLogin bounces anonymous visitors to the login page with a notice.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if !identity.LoggedIn {
			flash.Add(w, r, flash.CategoryNotice, "Please log in.")
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireEmployee admits only Employee and Admin accounts. Everyone else,
// logged in or not, is sent to the login page rather than shown a 403 so
// the management area stays undiscoverable.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if !identity.LoggedIn {
			flash.Add(w, r, flash.CategoryNotice, "Please log in to access this page.")
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		if !identity.Elevated() {
			flash.Add(w, r, flash.CategoryError, "Access denied. Employees or Admins only.")
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
