package middleware

import (
	"fmt"
	"net/http"

	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"github.com/motormart/motormart-backend/pkg/logger"
)

// ErrorHandler renders a failure to the visitor. Supplied by the response
// layer so this package stays below it.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

func Recoverer(logg *logger.Logger, fail ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					ctx := r.Context()
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{"panic": rec})
						logg.Error(ctx, "panic.recovered", err)
					}
					if fail != nil {
						fail(w, r.WithContext(ctx), pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
						return
					}
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
