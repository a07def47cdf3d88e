package accounts

import (
	"github.com/motormart/motormart-backend/pkg/db/models"
	"github.com/motormart/motormart-backend/pkg/enums"
)

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput is the validated login payload.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput is the validated self-service update payload.
type UpdateProfileInput struct {
	AccountID uint
	FirstName string
	LastName  string
	Email     string
}

// Summary is the account shape that leaves the service. The password hash
// stays behind in the store layer.
type Summary struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Type      enums.AccountType
}

// FromModel strips the password hash off a persisted account.
func FromModel(account *models.Account) Summary {
	return Summary{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Type:      account.AccountType,
	}
}
