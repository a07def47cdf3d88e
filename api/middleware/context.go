package middleware

import (
	"context"

	"github.com/motormart/motormart-backend/pkg/enums"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// Identity is the per-request view of who is browsing. The zero value is
// an anonymous visitor.
type Identity struct {
	AccountID uint
	FirstName string
	Type      enums.AccountType
	LoggedIn  bool
}

// Elevated reports whether the identity may reach inventory management.
func (i Identity) Elevated() bool {
	return i.LoggedIn && i.Type.Elevated()
}

// IdentityFromContext returns the request identity, anonymous if unset.
func IdentityFromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Identity{}
	}
	if v, ok := ctx.Value(ctxIdentity).(Identity); ok {
		return v
	}
	return Identity{}
}

// WithIdentity injects the identity into the context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}
