package rental_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/rental"
)

func RegisterRoutes(r chi.Router, s rental.RentalService, l *zap.Logger) {
	handler := NewRentalHandler(s, l.With(zap.String("component", "RentalHTTPHandler")))

	r.Route("/rental", func(r chi.Router) {
		r.Post("/cars", handler.AddCarHandler)
		r.Get("/cars", handler.ListCarsHandler)
		r.Get("/cars/{id}", handler.GetCarHandler)

		r.Post("/customers", handler.CreateCustomerHandler)
		r.Get("/customers/{id}/rentals", handler.HistoryHandler)
		r.Get("/customers/{id}/rentals/search", handler.SearchHistoryHandler)

		r.Post("/rentals", handler.RentHandler)
		r.Post("/rentals/{id}/return", handler.ReturnHandler)
	})
}
