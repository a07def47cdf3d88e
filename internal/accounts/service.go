package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgAuth "github.com/motormart/motormart-backend/pkg/auth"
	"github.com/motormart/motormart-backend/pkg/config"
	"github.com/motormart/motormart-backend/pkg/db"
	"github.com/motormart/motormart-backend/pkg/db/models"
	"github.com/motormart/motormart-backend/pkg/enums"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"github.com/motormart/motormart-backend/pkg/security"
	"gorm.io/gorm"
)

// The same message covers unknown email and wrong password so responses
// never reveal whether an address is registered.
const invalidCredentialsMessage = "Invalid email or password."

// LoginResult carries the sanitized account plus the freshly minted token.
type LoginResult struct {
	Token   string
	Account Summary
}

// Service defines the account behaviors needed by the controllers.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Summary, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	GetByID(ctx context.Context, id uint) (*Summary, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*LoginResult, error)
	UpdatePassword(ctx context.Context, accountID uint, password string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailExistsExcluding(ctx context.Context, email string, accountID uint) (bool, error)
}

type accountRepository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailExistsExcluding(ctx context.Context, email string, accountID uint) (bool, error)
	UpdateProfile(ctx context.Context, id uint, firstName, lastName, email string) (int64, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) (int64, error)
}

type service struct {
	repo        accountRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo           accountRepository
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an accounts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("account repository is required")
	}
	return &service{
		repo:        params.Repo,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*Summary, error) {
	email := normalizeEmail(input.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing email")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "That email already exists. Please log in or use a different email.")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	account, err := s.repo.Create(ctx, &models.Account{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		AccountType:  enums.AccountTypeClient,
	})
	if err != nil {
		// the unique index is the last line of defense against a racing insert
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "That email already exists. Please log in or use a different email.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
	}

	summary := FromModel(account)
	return &summary, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup account")
	}

	valid, err := security.VerifyPassword(input.Password, account.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.issue(account)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Summary, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup account")
	}
	summary := FromModel(account)
	return &summary, nil
}

// UpdateProfile persists name/email changes and reissues the session token,
// since the token embeds the first name. Uniqueness excludes the account's
// own current email.
func (s *service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)

	taken, err := s.repo.EmailExistsExcluding(ctx, email, input.AccountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing email")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "That email already exists. Please use a different email.")
	}

	rows, err := s.repo.UpdateProfile(ctx, input.AccountID, strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName), email)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "That email already exists. Please use a different email.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update account")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}

	account, err := s.repo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload account")
	}

	return s.issue(account)
}

func (s *service) UpdatePassword(ctx context.Context, accountID uint, password string) error {
	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	rows, err := s.repo.UpdatePasswordHash(ctx, accountID, hash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}
	return nil
}

func (s *service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, normalizeEmail(email))
}

func (s *service) EmailExistsExcluding(ctx context.Context, email string, accountID uint) (bool, error) {
	return s.repo.EmailExistsExcluding(ctx, normalizeEmail(email), accountID)
}

func (s *service) issue(account *models.Account) (*LoginResult, error) {
	token, err := pkgAuth.MintToken(s.jwtCfg, time.Now().UTC(), pkgAuth.TokenPayload{
		AccountID:   account.ID,
		FirstName:   account.FirstName,
		AccountType: account.AccountType,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &LoginResult{Token: token, Account: FromModel(account)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
