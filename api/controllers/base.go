package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/motormart/motormart-backend/api/responses"
	"github.com/motormart/motormart-backend/internal/view"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
)

// Home serves the landing page.
func Home(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "home", view.Data{
			"Title": "Home",
		})
	}
}

// idParam reads a positive integer route parameter.
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Sorry, we couldn't find that page.")
	}
	return uint(id), nil
}

// idField reads a positive integer form field.
func idField(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Sorry, we couldn't find that page.")
	}
	return uint(id), nil
}
