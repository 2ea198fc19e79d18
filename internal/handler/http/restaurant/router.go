package restaurant_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/restaurant"
)

func RegisterRoutes(r chi.Router, s restaurant.RestaurantService, l *zap.Logger) {
	handler := NewRestaurantHandler(s, l.With(zap.String("component", "RestaurantHTTPHandler")))

	r.Route("/restaurant", func(r chi.Router) {
		r.Get("/menu", handler.MenuHandler)
		r.Post("/menu/dishes", handler.AddDishHandler)
		r.Post("/menu/demand-pricing", handler.DemandPricingHandler)
		r.Delete("/menu/{category}/{name}", handler.RemoveDishHandler)
		r.Post("/menu/{category}/{name}/price", handler.PriceHandler)

		r.Post("/customers", handler.CreateCustomerHandler)
		r.Post("/customers/{id}/orders", handler.PlaceOrderHandler)
		r.Get("/customers/{id}/orders", handler.OrdersHandler)
	})
}
