package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/motormart/motormart-backend/pkg/enums"
)

// TokenPayload carries the identity data embedded into a session token.
// The password hash never travels through here; callers build the payload
// from the sanitized account summary.
type TokenPayload struct {
	AccountID   uint
	FirstName   string
	AccountType enums.AccountType
}

// SessionClaims is the JWT claim set reconstructed on every request.
type SessionClaims struct {
	AccountID   uint              `json:"account_id"`
	FirstName   string            `json:"account_firstname"`
	AccountType enums.AccountType `json:"account_type"`
	jwt.RegisteredClaims
}
