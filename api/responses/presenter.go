package responses

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/motormart/motormart-backend/api/middleware"
	"github.com/motormart/motormart-backend/internal/flash"
	"github.com/motormart/motormart-backend/internal/inventory"
	"github.com/motormart/motormart-backend/internal/view"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"github.com/motormart/motormart-backend/pkg/logger"
)

// NavSource supplies the classification list every page's navigation shows.
type NavSource interface {
	ListClassifications(ctx context.Context) ([]inventory.Classification, error)
}

// Presenter renders pages with the shared chrome attached: the visitor's
// identity, consumed flash messages, and the classification nav.
type Presenter struct {
	views view.Renderer
	nav   NavSource
	logg  *logger.Logger
}

func NewPresenter(views view.Renderer, nav NavSource, logg *logger.Logger) *Presenter {
	return &Presenter{views: views, nav: nav, logg: logg}
}

// Render draws a named view, merging the page data over the shared chrome.
// Messages supplied in data are shown after any queued flash messages.
func (p *Presenter) Render(w http.ResponseWriter, r *http.Request, status int, name string, data view.Data) {
	messages := flash.Consume(w, r)
	merged := view.Data{
		"Identity": middleware.IdentityFromContext(r.Context()),
		"Nav":      p.classifications(r.Context()),
	}
	for k, v := range data {
		merged[k] = v
	}
	if extra, ok := merged["Messages"].([]flash.Message); ok {
		messages = append(messages, extra...)
	}
	merged["Messages"] = messages

	if err := p.views.Render(w, status, name, merged); err != nil {
		if p.logg != nil {
			ctx := p.logg.WithField(r.Context(), "view", name)
			p.logg.Error(ctx, "view.render_failed", err)
		}
		// headers are already gone if the template died mid-write
		http.Error(w, "Sorry, something went wrong.", http.StatusInternalServerError)
	}
}

// Redirect sends a 303 so a POST never replays on refresh.
func (p *Presenter) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// RenderNotice draws a view with a message visible on this same response.
// The flash cookie only surfaces on the next request, so an immediate
// notice rides in through the view data instead of the queue.
func (p *Presenter) RenderNotice(w http.ResponseWriter, r *http.Request, status int, name, category, text string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	data["Messages"] = []flash.Message{{Category: category, Text: text}}
	p.Render(w, r, status, name, data)
}

// RedirectNotice queues a flash message and then redirects.
func (p *Presenter) RedirectNotice(w http.ResponseWriter, r *http.Request, location, category, text string) {
	flash.Add(w, r, category, text)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// WriteJSON serves the few data endpoints the management screens poll.
func (p *Presenter) WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// Fail is the error boundary: it maps the error to a status, logs the full
// chain, and renders the error page with only the public message.
func (p *Presenter) Fail(w http.ResponseWriter, r *http.Request, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if typed.Code() != pkgerrors.CodeInternal && typed.Message() != "" {
		msg = typed.Message()
	}

	if p.logg != nil {
		ctx := p.logg.WithFields(r.Context(), map[string]any{
			"error_code": string(typed.Code()),
			"status":     meta.HTTPStatus,
		})
		p.logg.Error(ctx, "request.error", err)
	}

	p.Render(w, r, meta.HTTPStatus, "error", view.Data{
		"Title":   http.StatusText(meta.HTTPStatus),
		"Status":  meta.HTTPStatus,
		"Message": msg,
	})
}

// NotFound renders the 404 page for unmatched routes and missing records.
func (p *Presenter) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Fail(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "Sorry, we couldn't find that page."))
}

func (p *Presenter) classifications(ctx context.Context) []inventory.Classification {
	if p.nav == nil {
		return nil
	}
	rows, err := p.nav.ListClassifications(ctx)
	if err != nil {
		if p.logg != nil {
			p.logg.Error(ctx, "nav.classifications_failed", err)
		}
		return nil
	}
	return rows
}
