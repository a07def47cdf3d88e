package controllers

import (
	"context"
	"net/http"

	"github.com/motormart/motormart-backend/api/forms"
	"github.com/motormart/motormart-backend/api/middleware"
	"github.com/motormart/motormart-backend/api/responses"
	"github.com/motormart/motormart-backend/internal/accounts"
	"github.com/motormart/motormart-backend/internal/flash"
	"github.com/motormart/motormart-backend/internal/reviews"
	"github.com/motormart/motormart-backend/internal/view"
	pkgAuth "github.com/motormart/motormart-backend/pkg/auth"
	"github.com/motormart/motormart-backend/pkg/config"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
)

// LoginPage serves the signin form.
func LoginPage(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "account/login", view.Data{
			"Title": "Login",
		})
	}
}

// Login authenticates a submission and establishes the session cookie.
func Login(svc accounts.Service, cfg *config.Config, p *responses.Presenter) http.HandlerFunc {
	form := forms.Login()
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "account/login", view.Data{
				"Title":  "Login",
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		result, err := svc.Login(r.Context(), accounts.LoginInput{
			Email:    outcome.Value("account_email"),
			Password: outcome.Value("account_password"),
		})
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeUnauthorized {
				p.RenderNotice(w, r, http.StatusUnauthorized, "account/login",
					flash.CategoryError, typed.Message(), view.Data{
						"Title":  "Login",
						"Values": outcome.Values,
					})
				return
			}
			p.Fail(w, r, err)
			return
		}

		pkgAuth.SetTokenCookie(w, result.Token, cfg.JWT, cfg.App.IsProd())
		p.RedirectNotice(w, r, "/account/", flash.CategorySuccess,
			"Welcome back, "+result.Account.FirstName+"!")
	}
}

// RegisterPage serves the signup form.
func RegisterPage(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "account/register", view.Data{
			"Title": "Register",
		})
	}
}

// Register creates an account and drops the visitor on the login form.
func Register(svc accounts.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		form := forms.Registration(svc.EmailExists)
		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "account/register", view.Data{
				"Title":  "Register",
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		summary, err := svc.Register(r.Context(), accounts.RegisterInput{
			FirstName: outcome.Value("account_firstname"),
			LastName:  outcome.Value("account_lastname"),
			Email:     outcome.Value("account_email"),
			Password:  outcome.Value("account_password"),
		})
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
				p.RenderNotice(w, r, http.StatusUnprocessableEntity, "account/register",
					flash.CategoryError, typed.Message(), view.Data{
						"Title":  "Register",
						"Values": outcome.Values,
					})
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.RenderNotice(w, r, http.StatusCreated, "account/login",
			flash.CategorySuccess,
			"Congratulations, you're registered "+summary.FirstName+". Please log in.",
			view.Data{"Title": "Login"})
	}
}

// Management serves the signed-in landing page with the account's reviews.
func Management(revSvc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())

		list, err := revSvc.ListByAccount(r.Context(), identity.AccountID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "account/management", view.Data{
			"Title":   "Account Management",
			"Reviews": list,
		})
	}
}

// Logout drops the session cookie and sends the visitor home.
func Logout(cfg *config.Config, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkgAuth.ClearTokenCookie(w, cfg.App.IsProd())
		p.RedirectNotice(w, r, "/", flash.CategoryNotice,
			"You have been logged out successfully.")
	}
}

// UpdatePage serves the combined profile/password edit view, self only.
func UpdatePage(svc accounts.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := selfParam(r)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		summary, err := svc.GetByID(r.Context(), accountID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "account/update", view.Data{
			"Title":   "Edit Account",
			"Account": summary,
		})
	}
}

// Update changes names and email, then reissues the token so the header
// greeting stays current.
func Update(svc accounts.Service, cfg *config.Config, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := selfParam(r)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		form := forms.AccountUpdate(func(ctx context.Context, email string) (bool, error) {
			return svc.EmailExistsExcluding(ctx, email, accountID)
		})
		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "account/update", view.Data{
				"Title":  "Edit Account",
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		result, err := svc.UpdateProfile(r.Context(), accounts.UpdateProfileInput{
			AccountID: accountID,
			FirstName: outcome.Value("account_firstname"),
			LastName:  outcome.Value("account_lastname"),
			Email:     outcome.Value("account_email"),
		})
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
				p.RenderNotice(w, r, http.StatusUnprocessableEntity, "account/update",
					flash.CategoryError, typed.Message(), view.Data{
						"Title":  "Edit Account",
						"Values": outcome.Values,
					})
				return
			}
			p.Fail(w, r, err)
			return
		}

		pkgAuth.SetTokenCookie(w, result.Token, cfg.JWT, cfg.App.IsProd())
		p.RedirectNotice(w, r, "/account/", flash.CategorySuccess,
			"Account information updated.")
	}
}

// UpdatePassword swaps the stored hash, self only.
func UpdatePassword(svc accounts.Service, p *responses.Presenter) http.HandlerFunc {
	form := forms.PasswordChange()
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := selfParam(r)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "account/update", view.Data{
				"Title":  "Edit Account",
				"Errors": outcome.Errors,
			})
			return
		}

		if err := svc.UpdatePassword(r.Context(), accountID, outcome.Value("account_password")); err != nil {
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/account/", flash.CategorySuccess,
			"Password updated.")
	}
}

// selfParam resolves the accountId route parameter and refuses requests
// aimed at anyone but the signed-in account.
func selfParam(r *http.Request) (uint, error) {
	identity := middleware.IdentityFromContext(r.Context())

	accountID, err := idParam(r, "accountId")
	if err != nil {
		return 0, err
	}
	if accountID != identity.AccountID {
		return 0, pkgerrors.New(pkgerrors.CodeForbidden, "You can only manage your own account.")
	}
	return accountID, nil
}
