package rental_http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dailyapps/internal/app/rental"
	domain "dailyapps/internal/domain/rental"
	"dailyapps/internal/handler/http/httpx"
)

var errorRules = []httpx.Rule{
	{Target: domain.ErrCarNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrCustomerNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrRentalNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrCarNotAvailable, Status: http.StatusConflict},
	{Target: domain.ErrInvalidRentalDuration, Status: http.StatusBadRequest},
}

type RentalHandler struct {
	service rental.RentalService
	logger  *zap.Logger
}

func NewRentalHandler(s rental.RentalService, l *zap.Logger) *RentalHandler {
	return &RentalHandler{service: s, logger: l}
}

type CreateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type RentRequest struct {
	CustomerID string `json:"customer_id"`
	CarID      string `json:"car_id"`
	Days       int    `json:"days"`
}

func (h *RentalHandler) fail(w http.ResponseWriter, err error) {
	httpx.RenderError(w, h.logger, err, errorRules...)
}

func (h *RentalHandler) AddCarHandler(w http.ResponseWriter, r *http.Request) {
	var req rental.CarInput
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	car, err := h.service.AddCar(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, car)
}

func (h *RentalHandler) ListCarsHandler(w http.ResponseWriter, r *http.Request) {
	availableOnly, _ := strconv.ParseBool(r.URL.Query().Get("available"))
	cars, err := h.service.ListCars(r.Context(), availableOnly)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, cars)
}

func (h *RentalHandler) GetCarHandler(w http.ResponseWriter, r *http.Request) {
	car, err := h.service.GetCar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, car)
}

func (h *RentalHandler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), req.Name, req.ContactInfo)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, c)
}

func (h *RentalHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, rentals)
}

func (h *RentalHandler) SearchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	maxPrice := decimal.Zero
	if raw := q.Get("max_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			h.fail(w, fmt.Errorf("invalid max_price %q: %w", raw, httpx.ErrBadRequest))
			return
		}
		maxPrice = p
	}
	rentals, err := h.service.SearchHistory(r.Context(), chi.URLParam(r, "id"), q.Get("make"), q.Get("model"), maxPrice)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, rentals)
}

func (h *RentalHandler) RentHandler(w http.ResponseWriter, r *http.Request) {
	var req RentRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	rent, err := h.service.Rent(r.Context(), req.CustomerID, req.CarID, req.Days)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, rent)
}

func (h *RentalHandler) ReturnHandler(w http.ResponseWriter, r *http.Request) {
	rent, err := h.service.Return(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, rent)
}
