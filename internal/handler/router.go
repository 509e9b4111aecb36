package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every resource handler mounted by NewRouter.
type Handlers struct {
	Rooms      *RoomHandler
	Bookings   *BookingHandler
	FoodOrders *FoodOrderHandler
	Amenities  *AmenityHandler
	Expenses   *ExpenseHandler
}

// NewRouter builds the API router with the global middleware stack.
func NewRouter(h Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(log))
	r.Use(CORS)

	r.Get("/health", HealthCheck)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.Rooms.Create)
		r.Get("/", h.Rooms.List)
		r.Get("/{id}", h.Rooms.Get)
		r.Delete("/{id}", h.Rooms.Delete)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.Bookings.Create)
		r.Get("/", h.Bookings.List)
		r.Get("/conflicts", h.Bookings.Conflicts)
		r.Get("/{id}", h.Bookings.Get)
		r.Patch("/{id}/status", h.Bookings.UpdateStatus)
	})

	r.Route("/package-bookings", func(r chi.Router) {
		r.Post("/", h.Bookings.CreatePackage)
		r.Get("/", h.Bookings.ListPackage)
		r.Get("/{id}", h.Bookings.GetPackage)
		r.Patch("/{id}/status", h.Bookings.UpdatePackageStatus)
	})

	r.Route("/food-orders", func(r chi.Router) {
		r.Post("/", h.FoodOrders.Create)
		r.Get("/", h.FoodOrders.List)
		r.Put("/{id}", h.FoodOrders.Update)
		r.Patch("/{id}/status", h.FoodOrders.UpdateStatus)
		r.Delete("/{id}", h.FoodOrders.Delete)
	})

	r.Route("/services", func(r chi.Router) {
		r.Post("/", h.Amenities.CreateService)
		r.Get("/", h.Amenities.ListServices)
		r.Delete("/{id}", h.Amenities.DeleteService)

		r.Post("/assigned", h.Amenities.Assign)
		r.Get("/assigned", h.Amenities.ListAssigned)
		r.Patch("/assigned/{id}", h.Amenities.UpdateAssigned)
		r.Delete("/assigned/{id}", h.Amenities.DeleteAssigned)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", h.Expenses.Create)
		r.Get("/", h.Expenses.List)
		r.Get("/image/{filename}", h.Expenses.Image)
	})

	return r
}
