package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/motormart/motormart-backend/api/forms"
	"github.com/motormart/motormart-backend/api/responses"
	"github.com/motormart/motormart-backend/internal/flash"
	"github.com/motormart/motormart-backend/internal/inventory"
	"github.com/motormart/motormart-backend/internal/reviews"
	"github.com/motormart/motormart-backend/internal/view"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
)

// ByClassification serves the public listing for one classification. A
// classification with no vehicles renders an empty grid, not an error.
func ByClassification(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classificationID, err := idParam(r, "classificationId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		classification, vehicles, err := svc.ListByClassification(r.Context(), classificationID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "inventory/classification", view.Data{
			"Title":    classification.Name + " vehicles",
			"Vehicles": vehicles,
		})
	}
}

// Detail serves one vehicle's page with its reviews.
func Detail(invSvc inventory.Service, revSvc reviews.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invID, err := idParam(r, "invId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		vehicle, err := invSvc.GetVehicle(r.Context(), invID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		list, err := revSvc.ListByInventory(r.Context(), invID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "inventory/detail", view.Data{
			"Title":   strconv.Itoa(vehicle.Year) + " " + vehicle.Make + " " + vehicle.Model,
			"Vehicle": vehicle,
			"Reviews": list,
		})
	}
}

// ManagementView serves the staff landing page.
func ManagementView(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "inventory/management", view.Data{
			"Title": "Inventory Management",
		})
	}
}

// AddClassificationPage serves the add-classification form.
func AddClassificationPage(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "inventory/add-classification", view.Data{
			"Title": "Add Classification",
		})
	}
}

// AddClassification creates a classification from the form submission.
func AddClassification(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		form := forms.Classification(svc.ClassificationNameExists)
		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "inventory/add-classification", view.Data{
				"Title":  "Add Classification",
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		created, err := svc.CreateClassification(r.Context(), inventory.ClassificationInput{
			Name: outcome.Value("classification_name"),
		})
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
				p.RenderNotice(w, r, http.StatusUnprocessableEntity, "inventory/add-classification",
					flash.CategoryError, typed.Message(), view.Data{
						"Title":  "Add Classification",
						"Values": outcome.Values,
					})
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/inv/", flash.CategorySuccess,
			"The "+created.Name+" classification was added.")
	}
}

// AddVehiclePage serves the add-vehicle form. The classification select
// list rides in on the shared nav data.
func AddVehiclePage(p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Render(w, r, http.StatusOK, "inventory/add-inventory", view.Data{
			"Title": "Add Vehicle",
		})
	}
}

// AddVehicle creates a vehicle. On validation failure the form re-renders
// with every field, including the classification selection, intact.
func AddVehicle(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			p.Fail(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse form"))
			return
		}

		form := forms.Vehicle(classificationProbe(svc))
		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "inventory/add-inventory", view.Data{
				"Title":  "Add Vehicle",
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		created, err := svc.CreateVehicle(r.Context(), vehicleInput(outcome))
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/inv/", flash.CategorySuccess,
			"The "+created.Make+" "+created.Model+" was added.")
	}
}

// EditVehiclePage serves the edit form prefilled from the stored vehicle.
func EditVehiclePage(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invID, err := idParam(r, "invId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		vehicle, err := svc.GetVehicle(r.Context(), invID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "inventory/edit-inventory", view.Data{
			"Title":   "Edit " + vehicle.Make + " " + vehicle.Model,
			"Vehicle": vehicle,
			"Values":  vehicleValues(vehicle),
		})
	}
}

// UpdateVehicle applies an edit submission. Failures re-render the edit
// form with the submitted values so nothing typed is lost.
func UpdateVehicle(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
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

		form := forms.Vehicle(classificationProbe(svc))
		outcome, err := form.Validate(r.Context(), r.PostForm)
		if err != nil {
			p.Fail(w, r, err)
			return
		}
		if !outcome.OK() {
			p.Render(w, r, http.StatusUnprocessableEntity, "inventory/edit-inventory", view.Data{
				"Title":  "Edit Vehicle",
				"InvID":  invID,
				"Values": outcome.Values,
				"Errors": outcome.Errors,
			})
			return
		}

		updated, err := svc.UpdateVehicle(r.Context(), inventory.VehicleUpdateInput{
			ID:           invID,
			VehicleInput: vehicleInput(outcome),
		})
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/inv/", flash.CategorySuccess,
			"The "+updated.Make+" "+updated.Model+" was updated.")
	}
}

// DeleteVehiclePage serves the delete confirmation view.
func DeleteVehiclePage(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invID, err := idParam(r, "invId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		vehicle, err := svc.GetVehicle(r.Context(), invID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		p.Render(w, r, http.StatusOK, "inventory/delete-confirm", view.Data{
			"Title":   "Delete " + vehicle.Make + " " + vehicle.Model,
			"Vehicle": vehicle,
		})
	}
}

// DeleteVehicle removes a vehicle. Zero rows affected is a user-facing
// notice back on the confirmation page, not an exception.
func DeleteVehicle(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
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

		if err := svc.DeleteVehicle(r.Context(), invID); err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				p.RedirectNotice(w, r, "/inv/delete/"+strconv.FormatUint(uint64(invID), 10),
					flash.CategoryError, "Sorry, the delete failed.")
				return
			}
			p.Fail(w, r, err)
			return
		}

		p.RedirectNotice(w, r, "/inv/", flash.CategorySuccess, "The vehicle was deleted.")
	}
}

// vehicleRow is the wire shape the management table script consumes.
type vehicleRow struct {
	InvID         uint   `json:"inv_id"`
	Make          string `json:"inv_make"`
	Model         string `json:"inv_model"`
	Year          int    `json:"inv_year"`
	Price         int64  `json:"inv_price"`
	Miles         int64  `json:"inv_miles"`
	Color         string `json:"inv_color"`
	ThumbnailPath string `json:"inv_thumbnail"`
}

// InventoryJSON serves the vehicles of one classification as JSON for the
// management table. An empty classification yields an empty array.
func InventoryJSON(svc inventory.Service, p *responses.Presenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classificationID, err := idParam(r, "classificationId")
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		_, vehicles, err := svc.ListByClassification(r.Context(), classificationID)
		if err != nil {
			p.Fail(w, r, err)
			return
		}

		rows := make([]vehicleRow, 0, len(vehicles))
		for _, v := range vehicles {
			rows = append(rows, vehicleRow{
				InvID:         v.ID,
				Make:          v.Make,
				Model:         v.Model,
				Year:          v.Year,
				Price:         v.Price,
				Miles:         v.Miles,
				Color:         v.Color,
				ThumbnailPath: v.ThumbnailPath,
			})
		}
		p.WriteJSON(w, http.StatusOK, rows)
	}
}

// classificationProbe adapts the service existence check to a form rule.
func classificationProbe(svc inventory.Service) forms.Check {
	return func(ctx context.Context, value string) (bool, error) {
		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return false, nil
		}
		return svc.ClassificationExists(ctx, uint(id))
	}
}

// vehicleValues prefills the edit form from a stored vehicle using the
// same keys a submission would carry.
func vehicleValues(v *inventory.Vehicle) map[string]string {
	return map[string]string{
		"classification_id": strconv.FormatUint(uint64(v.ClassificationID), 10),
		"inv_make":          v.Make,
		"inv_model":         v.Model,
		"inv_description":   v.Description,
		"inv_image":         v.ImagePath,
		"inv_thumbnail":     v.ThumbnailPath,
		"inv_price":         strconv.FormatInt(v.Price, 10),
		"inv_year":          strconv.Itoa(v.Year),
		"inv_miles":         strconv.FormatInt(v.Miles, 10),
		"inv_color":         v.Color,
	}
}

// vehicleInput maps a validated submission to the service input. The
// numeric fields were already vetted by the form rules.
func vehicleInput(outcome forms.Outcome) inventory.VehicleInput {
	classificationID, _ := strconv.ParseUint(outcome.Value("classification_id"), 10, 32)
	price, _ := strconv.ParseInt(outcome.Value("inv_price"), 10, 64)
	year, _ := strconv.Atoi(outcome.Value("inv_year"))
	miles, _ := strconv.ParseInt(outcome.Value("inv_miles"), 10, 64)

	return inventory.VehicleInput{
		ClassificationID: uint(classificationID),
		Make:             outcome.Value("inv_make"),
		Model:            outcome.Value("inv_model"),
		Description:      outcome.Value("inv_description"),
		ImagePath:        outcome.Value("inv_image"),
		ThumbnailPath:    outcome.Value("inv_thumbnail"),
		Price:            price,
		Year:             year,
		Miles:            miles,
		Color:            outcome.Value("inv_color"),
	}
}
