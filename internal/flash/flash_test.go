package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}
	return req
}

func TestAddThenConsumeRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/login", nil)

	Add(rec, req, CategoryNotice, "Please log in.")

	// simulate the redirect: the browser sends the cookie back
	next := requestWithCookies(t, rec)
	nextRec := httptest.NewRecorder()

	messages := Consume(nextRec, next)
	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	if messages[0].Category != CategoryNotice || messages[0].Text != "Please log in." {
		t.Fatalf("unexpected message %+v", messages[0])
	}

	// consumption clears the cookie
	cleared := false
	for _, cookie := range nextRec.Result().Cookies() {
		if cookie.Name == CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared on consume")
	}
}

func TestAddAppendsToExistingQueue(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	Add(rec, req, CategorySuccess, "first")

	second := requestWithCookies(t, rec)
	secondRec := httptest.NewRecorder()
	Add(secondRec, second, CategoryError, "second")

	final := requestWithCookies(t, secondRec)
	messages := Consume(httptest.NewRecorder(), final)
	if len(messages) != 2 {
		t.Fatalf("expected both messages, got %d", len(messages))
	}
	if messages[0].Text != "first" || messages[1].Text != "second" {
		t.Fatalf("unexpected order %+v", messages)
	}
}

func TestConsumeWithoutCookieIsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if messages := Consume(httptest.NewRecorder(), req); len(messages) != 0 {
		t.Fatalf("expected no messages, got %+v", messages)
	}
}

func TestConsumeIgnoresGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64%%%"})
	if messages := Consume(httptest.NewRecorder(), req); len(messages) != 0 {
		t.Fatalf("expected garbage cookie to yield no messages")
	}
}
