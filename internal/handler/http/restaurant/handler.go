package restaurant_http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dailyapps/internal/app/restaurant"
	domain "dailyapps/internal/domain/restaurant"
	"dailyapps/internal/handler/http/httpx"
)

var errorRules = []httpx.Rule{
	{Target: domain.ErrDishNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrCustomerNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrOrderNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrDuplicateDish, Status: http.StatusConflict},
	{Target: domain.ErrCategoryMismatch, Status: http.StatusBadRequest},
	{Target: domain.ErrPriceLimitExceeded, Status: http.StatusBadRequest},
	{Target: domain.ErrInvalidOrder, Status: http.StatusBadRequest},
}

type RestaurantHandler struct {
	service restaurant.RestaurantService
	logger  *zap.Logger
}

func NewRestaurantHandler(s restaurant.RestaurantService, l *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{service: s, logger: l}
}

type CreateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// PriceRequest changes a price by Percent; negative values lower it.
type PriceRequest struct {
	Percent decimal.Decimal `json:"percent"`
}

type OrderRequest struct {
	Dishes []string `json:"dishes"`
}

type DemandPricingResponse struct {
	Repriced []string `json:"repriced"`
}

func (h *RestaurantHandler) fail(w http.ResponseWriter, err error) {
	httpx.RenderError(w, h.logger, err, errorRules...)
}

// dishParams reads the category and the unescaped dish name from the path.
func dishParams(r *http.Request) (domain.Category, string, error) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		return "", "", fmt.Errorf("invalid dish name: %w", httpx.ErrBadRequest)
	}
	return domain.Category(chi.URLParam(r, "category")), name, nil
}

func (h *RestaurantHandler) MenuHandler(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, menu)
}

func (h *RestaurantHandler) AddDishHandler(w http.ResponseWriter, r *http.Request) {
	var req restaurant.DishInput
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	d, err := h.service.AddDish(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	status := http.StatusCreated
	if d.Pending {
		status = http.StatusAccepted
	}
	httpx.RenderJSON(w, h.logger, status, d)
}

func (h *RestaurantHandler) RemoveDishHandler(w http.ResponseWriter, r *http.Request) {
	category, name, err := dishParams(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := h.service.RemoveDish(r.Context(), category, name); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RestaurantHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	category, name, err := dishParams(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	var req PriceRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	d, err := h.service.AdjustPrice(r.Context(), category, name, req.Percent)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, d)
}

func (h *RestaurantHandler) DemandPricingHandler(w http.ResponseWriter, r *http.Request) {
	repriced, err := h.service.ApplyDemandPricing(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if repriced == nil {
		repriced = []string{}
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, DemandPricingResponse{Repriced: repriced})
}

func (h *RestaurantHandler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
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

func (h *RestaurantHandler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), chi.URLParam(r, "id"), req.Dishes)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, o)
}

func (h *RestaurantHandler) OrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Orders(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, orders)
}
