package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/motormart/motormart-backend/internal/flash"
	"github.com/motormart/motormart-backend/pkg/enums"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(identity Identity) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/inv/", nil)
	return req.WithContext(WithIdentity(req.Context(), identity))
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	RequireLogin(okHandler(&called)).ServeHTTP(rec, requestAs(Identity{}))

	if called {
		t.Fatalf("anonymous request must not reach the handler")
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/account/login" {
		t.Fatalf("expected 303 to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	flashed := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			flashed = true
		}
	}
	if !flashed {
		t.Fatalf("redirect should carry a notice")
	}
}

func TestRequireLoginAdmitsAnyAccount(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	RequireLogin(okHandler(&called)).ServeHTTP(rec, requestAs(Identity{
		AccountID: 1, Type: enums.AccountTypeClient, LoggedIn: true,
	}))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("client account should pass the login guard")
	}
}

func TestRequireEmployeeRejectsClients(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	RequireEmployee(okHandler(&called)).ServeHTTP(rec, requestAs(Identity{
		AccountID: 1, Type: enums.AccountTypeClient, LoggedIn: true,
	}))

	if called {
		t.Fatalf("client must not reach inventory management")
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/account/login" {
		t.Fatalf("expected 303 to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRequireEmployeeAdmitsStaff(t *testing.T) {
	for _, at := range []enums.AccountType{enums.AccountTypeEmployee, enums.AccountTypeAdmin} {
		called := false
		rec := httptest.NewRecorder()
		RequireEmployee(okHandler(&called)).ServeHTTP(rec, requestAs(Identity{
			AccountID: 1, Type: at, LoggedIn: true,
		}))
		if !called || rec.Code != http.StatusOK {
			t.Fatalf("%s should pass the employee guard", at)
		}
	}
}
