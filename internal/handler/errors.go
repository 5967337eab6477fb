package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tripweaver/backend/internal/domain"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized becomes an opaque 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound,
			errorBody{errorDetail{Code: "not_found", Message: "resource not found"}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity,
			errorBody{errorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized,
			errorBody{errorDetail{Code: "unauthorized", Message: "missing or invalid token"}})
	case errors.Is(err, domain.ErrInsufficientCredits):
		writeJSON(w, http.StatusPaymentRequired,
			errorBody{errorDetail{Code: "insufficient_credits", Message: "no credits remaining"}})
	default:
		writeJSON(w, http.StatusInternalServerError,
			errorBody{errorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

// badRequest rejects a request before it reaches the service layer.
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest,
		errorBody{errorDetail{Code: "bad_request", Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst. Unknown fields are
// ignored so clients can send extra fields without breaking.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// unwrapMessage strips the wrapping prefixes from a validation error so the
// client sees only the human-readable tail.
// e.g. "service.TripService.Save: validation error: departure city is required"
// becomes "departure city is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}
