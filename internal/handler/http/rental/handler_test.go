package rental_http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dailyapps/internal/app/rental"
)

func do(t *testing.T, h http.Handler, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestRentalEndpoints(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, rental.NewRentalService(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	var car rental.CarInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/rental/cars",
		map[string]any{"make": "Volvo", "model": "XC90", "price_per_day": "80", "class": "luxury", "insurance": "15", "premium_service": "5"}, &car))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/rental/cars",
		map[string]any{"make": "V0lvo", "model": "XC90", "price_per_day": "80"}, nil))

	var cust rental.CustomerInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/rental/customers",
		map[string]string{"name": "Anna", "contact_info": "anna@example.com"}, &cust))

	var rent rental.RentalInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/rental/rentals",
		map[string]any{"customer_id": cust.ID, "car_id": car.ID, "days": 2}, &rent))
	assert.Equal(t, "180", rent.Price.String())

	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, "/rental/rentals",
		map[string]any{"customer_id": cust.ID, "car_id": car.ID, "days": 1}, nil))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/rental/rentals",
		map[string]any{"customer_id": cust.ID, "car_id": car.ID, "days": 0}, nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/rental/rentals",
		map[string]any{"customer_id": cust.ID, "car_id": "nope", "days": 1}, nil))

	var cars []rental.CarInfo
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/rental/cars?available=true", nil, &cars))
	assert.Empty(t, cars)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/rental/rentals/"+rent.ID+"/return", nil, &rent))
	assert.False(t, rent.Active)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, "/rental/rentals/"+rent.ID+"/return", nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/rental/rentals/nope/return", nil, nil))

	var found []rental.RentalInfo
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/rental/customers/"+cust.ID+"/rentals/search?make=Volvo&max_price=100", nil, &found))
	assert.Len(t, found, 1)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodGet, "/rental/customers/"+cust.ID+"/rentals/search?make=Saab", nil, nil))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/rental/customers/"+cust.ID+"/rentals/search?max_price=cheap", nil, nil))
}
