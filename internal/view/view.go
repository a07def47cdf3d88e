package view

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Data is the bag handed to a template. The presenter injects identity,
// flash messages, and the classification nav before rendering.
type Data map[string]any

// Renderer resolves a view name and executes it against a data bag. The
// HTML itself is a collaborator concern; the core only decides what to
// render and with which data.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data Data) error
}

// Engine is an html/template backed Renderer. Each template file declares
// its view name with {{define "account/login"}}...{{end}}.
type Engine struct {
	templates *template.Template
}

// NewEngine parses every template under dir.
func NewEngine(dir string) (*Engine, error) {
	if dir == "" {
		return nil, fmt.Errorf("templates dir is required")
	}
	templates, err := template.ParseGlob(filepath.Join(dir, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Engine{templates: templates}, nil
}

// Render writes the named template with the provided data.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data Data) error {
	if e.templates.Lookup(name) == nil {
		return fmt.Errorf("unknown view %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return e.templates.ExecuteTemplate(w, name, data)
}
