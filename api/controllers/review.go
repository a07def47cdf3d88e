package controllers

import (
	"net/http"
	"strconv"

	"github.com/motormart/motormart-backend/api/forms"
	"github.com/motormart/motormart-backend/api/middleware"
	"github.com/motormart/motormart-backend/api/responses"
	"github.com/motormart/motormart-backend/internal/flash"
	"github.com/motormart/motormart-backend/internal/reviews"
	"github.com/motormart/motormart-backend/internal/view"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
)

// AddReview handles the form on the vehicle detail page. There is no
// dedicated review form screen, so failures flash and bounce back to the
// detail page instead of re-rendering.
func AddReview(svc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	form := forms.Review()
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		invID, err := idField(r.PostForm.Get("inv_id"))
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		detailPath := "/inv/detail/" + strconv.FormatUint(uint64(invID), 10)

		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.RedirectNotice(w, r, detailPath, flash.CategoryError, outcome.Joined())
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		if _, err := svc.Add(r.Context(), reviews.AddInput{
			Text:        outcome.Value("review_text"),
			InventoryID: invID,
			AccountID:   identity.AccountID,
		}); err != nil {
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, detailPath, flash.CategorySuccess, "Thanks for your review!")
	}
}

// EditReviewPage serves the edit form, owner only.
func EditReviewPage(svc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := idParam(r, "reviewId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		review, err := svc.GetForOwner(r.Context(), reviewID, identity.AccountID)
		if err != nil {
			if denyNotOwner(p, w, r, err) {
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "review/edit", view.Data{
			"Title":  "Edit your review",
			"Review": review,
		})
	}
}

// UpdateReview applies an edit, owner only. Validation failures re-render
// the edit screen with the submitted text intact.
func UpdateReview(svc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	form := forms.ReviewEdit()
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := idParam(r, "reviewId")
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
			p.Render(w, r, http.StatusUnprocessableEntity, "review/edit", view.Data{
				"Title":    "Edit your review",
				"ReviewID": reviewID,
				"Values":   outcome.Values,
				"Errors":   outcome.Errors,
			})
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		if _, err := svc.Update(r.Context(), reviews.UpdateInput{
			ReviewID:  reviewID,
			AccountID: identity.AccountID,
			Text:      outcome.Value("review_text"),
		}); err != nil {
			if denyNotOwner(p, w, r, err) {
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/account/", flash.CategorySuccess, "Your review was updated.")
	}
}

// DeleteReview removes a review, owner only.
func DeleteReview(svc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := idParam(r, "reviewId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		if err := svc.Delete(r.Context(), reviewID, identity.AccountID); err != nil {
			if denyNotOwner(p, w, r, err) {
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/account/", flash.CategorySuccess, "Your review was deleted.")
	}
}

// denyNotOwner bounces an ownership refusal back to the account page with
// a notice. Other errors stay with the boundary.
func denyNotOwner(p *responses.Presenter, w http.ResponseWriter, r *http.Request, err error) bool {
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeOwnership {
		return false
	}
	p.RedirectNotice(w, r, "/account/", flash.CategoryError, typed.Message())
	return true
}
