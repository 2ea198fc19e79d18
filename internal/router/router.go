package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"dailyapps/internal/app/bank"
	"dailyapps/internal/app/jobs"
	"dailyapps/internal/app/messenger"
	"dailyapps/internal/app/rental"
	"dailyapps/internal/app/restaurant"
	bank_http "dailyapps/internal/handler/http/bank"
	"dailyapps/internal/handler/http/httpx"
	jobs_http "dailyapps/internal/handler/http/jobs"
	messenger_http "dailyapps/internal/handler/http/messenger"
	rental_http "dailyapps/internal/handler/http/rental"
	restaurant_http "dailyapps/internal/handler/http/restaurant"
)

type Services struct {
	Bank       bank.BankService
	Rental     rental.RentalService
	Jobs       jobs.JobBoardService
	Messenger  messenger.MessengerService
	Restaurant restaurant.RestaurantService
}

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(s Services, opts Options, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.RenderJSONError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.RenderJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("dailyapps is healthy"))
	})

	bank_http.RegisterRoutes(r, s.Bank, logger)
	rental_http.RegisterRoutes(r, s.Rental, logger)
	jobs_http.RegisterRoutes(r, s.Jobs, logger)
	messenger_http.RegisterRoutes(r, s.Messenger, logger)
	restaurant_http.RegisterRoutes(r, s.Restaurant, logger)

	return r
}
