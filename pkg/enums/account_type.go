package enums

import "fmt"

// AccountType represents the access level of a dealership account.
type AccountType string

const (
	AccountTypeClient   AccountType = "Client"
	AccountTypeEmployee AccountType = "Employee"
	AccountTypeAdmin    AccountType = "Admin"
)

var validAccountTypes = []AccountType{
	AccountTypeClient,
	AccountTypeEmployee,
	AccountTypeAdmin,
}

// String implements fmt.Stringer.
func (a AccountType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccountType.
func (a AccountType) IsValid() bool {
	for _, candidate := range validAccountTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// Elevated reports whether the account type may manage inventory and
// classifications.
func (a AccountType) Elevated() bool {
	return a == AccountTypeEmployee || a == AccountTypeAdmin
}

// ParseAccountType converts a raw string into an AccountType.
func ParseAccountType(value string) (AccountType, error) {
	typed := AccountType(value)
	if !typed.IsValid() {
		return "", fmt.Errorf("invalid account type %q", value)
	}
	return typed, nil
}
