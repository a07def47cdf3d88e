package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/motormart/motormart-backend/api/controllers"
	"github.com/motormart/motormart-backend/api/middleware"
	"github.com/motormart/motormart-backend/api/responses"
	"github.com/motormart/motormart-backend/internal/accounts"
	"github.com/motormart/motormart-backend/internal/inventory"
	"github.com/motormart/motormart-backend/internal/reviews"
	"github.com/motormart/motormart-backend/pkg/config"
	"github.com/motormart/motormart-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	presenter *responses.Presenter,
	accountService accounts.Service,
	inventoryService inventory.Service,
	reviewService reviews.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg, presenter.Fail),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Identify(cfg.JWT, cfg.App.IsProd(), logg),
	)

	r.NotFound(presenter.NotFound)

	if cfg.View.StaticDir != "" {
		static := http.FileServer(http.Dir(cfg.View.StaticDir))
		for _, prefix := range []string{"/css", "/js", "/images"} {
			r.Handle(prefix+"/*", static)
		}
	}

	r.Get("/", controllers.Home(presenter))

	r.Route("/account", func(r chi.Router) {
		r.Get("/login", controllers.LoginPage(presenter))
		r.Post("/login", controllers.Login(accountService, cfg, presenter))
		r.Get("/register", controllers.RegisterPage(presenter))
		r.Post("/register", controllers.Register(accountService, presenter))
		r.Get("/logout", controllers.Logout(cfg, presenter))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin)
			r.Get("/", controllers.Management(reviewService, presenter))
			r.Get("/update/{accountId}", controllers.UpdatePage(accountService, presenter))
			r.Post("/update/{accountId}", controllers.Update(accountService, cfg, presenter))
			r.Post("/update-password/{accountId}", controllers.UpdatePassword(accountService, presenter))
		})
	})

	r.Route("/inv", func(r chi.Router) {
		r.Get("/type/{classificationId}", controllers.ByClassification(inventoryService, presenter))
		r.Get("/detail/{invId}", controllers.Detail(inventoryService, reviewService, presenter))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireEmployee)
			r.Get("/", controllers.ManagementView(presenter))
			r.Get("/add-classification", controllers.AddClassificationPage(presenter))
			r.Post("/add-classification", controllers.AddClassification(inventoryService, presenter))
			r.Get("/add-inventory", controllers.AddVehiclePage(presenter))
			r.Post("/add-inventory", controllers.AddVehicle(inventoryService, presenter))
			r.Get("/edit/{invId}", controllers.EditVehiclePage(inventoryService, presenter))
			r.Post("/update", controllers.UpdateVehicle(inventoryService, presenter))
			r.Get("/delete/{invId}", controllers.DeleteVehiclePage(inventoryService, presenter))
			r.Post("/delete", controllers.DeleteVehicle(inventoryService, presenter))
			r.Get("/getInventory/{classificationId}", controllers.InventoryJSON(inventoryService, presenter))
		})
	})

	r.Route("/review", func(r chi.Router) {
		r.Use(middleware.RequireLogin)
		r.Post("/add", controllers.AddReview(reviewService, presenter))
		r.Get("/edit/{reviewId}", controllers.EditReviewPage(reviewService, presenter))
		r.Post("/update/{reviewId}", controllers.UpdateReview(reviewService, presenter))
		r.Post("/delete/{reviewId}", controllers.DeleteReview(reviewService, presenter))
	})

	return r
}
