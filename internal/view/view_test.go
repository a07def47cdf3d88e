package view

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEngineRendersNamedTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := `{{define "account/login"}}<h1>{{.Title}}</h1>{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "login.tmpl"), []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := NewEngine(dir)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	rec := httptest.NewRecorder()
	if err := engine.Render(rec, http.StatusOK, "account/login", Data{"Title": "Login"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Login</h1>") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestEngineRejectsUnknownView(t *testing.T) {
	dir := t.TempDir()
	tmpl := `{{define "home"}}hi{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "home.tmpl"), []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := NewEngine(dir)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := engine.Render(httptest.NewRecorder(), http.StatusOK, "missing", Data{}); err == nil {
		t.Fatalf("expected unknown view error")
	}
}
