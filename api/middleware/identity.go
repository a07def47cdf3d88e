package middleware

import (
	"net/http"

	pkgAuth "github.com/motormart/motormart-backend/pkg/auth"
	"github.com/motormart/motormart-backend/pkg/config"
	"github.com/motormart/motormart-backend/pkg/logger"
)

// Identify reads the session cookie and seeds the request context with the
// visitor's identity. It never rejects a request: a missing, expired, or
// tampered token just means the visitor browses anonymously, with the stale
// cookie cleared so the browser stops resending it.
func Identify(cfg config.JWTConfig, secureCookies bool, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := pkgAuth.ReadTokenCookie(r)
			if token == "" {
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), Identity{})))
				return
			}

			claims, err := pkgAuth.ParseToken(cfg, token)
			if err != nil {
				pkgAuth.ClearTokenCookie(w, secureCookies)
				ctx := r.Context()
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "reason", err.Error()), "session.cookie_rejected")
				}
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, Identity{})))
				return
			}

			identity := Identity{
				AccountID: claims.AccountID,
				FirstName: claims.FirstName,
				Type:      claims.AccountType,
				LoggedIn:  true,
			}

			ctx := WithIdentity(r.Context(), identity)
			if logg != nil {
				ctx = logg.WithAccountID(ctx, identity.AccountID)
				ctx = logg.WithAccountType(ctx, string(identity.Type))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
