package auth

import (
	"net/http"

	"github.com/motormart/motormart-backend/pkg/config"
)

// TokenCookieName is the cookie carrying the signed session token.
const TokenCookieName = "jwt"

// SetTokenCookie attaches the signed token to the response. HttpOnly always,
// Secure only outside dev so local http still works.
func SetTokenCookie(w http.ResponseWriter, token string, jwtCfg config.JWTConfig, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(jwtCfg.TokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie expires the session cookie. Logout is purely client-side
// removal; an already captured token stays valid until its embedded expiry.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadTokenCookie returns the raw token from the request, or "" when absent.
func ReadTokenCookie(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
