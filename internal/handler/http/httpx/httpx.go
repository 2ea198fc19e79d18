// Package httpx holds the JSON request and response helpers shared by the
// domain handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/validate"
)

var ErrBadRequest = errors.New("bad request")

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func RenderJSON(w http.ResponseWriter, l *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Error("Failed to write JSON response", zap.Error(err))
	}
}

func RenderJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: statusCode})
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v: %w", err, ErrBadRequest)
	}
	return nil
}

func Int64Param(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, ErrBadRequest)
	}
	return v, nil
}

// IntQuery returns the named query parameter, or def when it is absent.
func IntQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, ErrBadRequest)
	}
	return v, nil
}

// Rule maps an error kind to a status code.
type Rule struct {
	Target error
	Status int
}

// Status returns the code of the first rule matching err. Bad requests and
// validation failures are 400; anything unmatched is 500.
func Status(err error, rules ...Rule) int {
	if errors.Is(err, ErrBadRequest) || errors.Is(err, validate.ErrValidation) {
		return http.StatusBadRequest
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			return rule.Status
		}
	}
	return http.StatusInternalServerError
}

// RenderError writes err with the status picked by rules. Server errors are
// logged and hidden from the client.
func RenderError(w http.ResponseWriter, l *zap.Logger, err error, rules ...Rule) {
	status := Status(err, rules...)
	if status >= http.StatusInternalServerError {
		l.Error("Request failed", zap.Error(err))
		RenderJSONError(w, "Internal server error", status)
		return
	}
	l.Debug("Request rejected", zap.Int("status", status), zap.Error(err))
	RenderJSONError(w, err.Error(), status)
}
