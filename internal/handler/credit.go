package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/tripweaver/backend/internal/billing"
	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/middleware"
)

// CreditBalance returns the caller's remaining generation credits.
func (s *Server) CreditBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	balance, err := s.credits.Balance(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"credits": balance})
}

// PaymentWebhook receives checkout events from the payment provider. The
// signature header authenticates the payload; there is no session here.
func (s *Server) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "unreadable body")
		return
	}

	sig := r.Header.Get("X-Webhook-Signature")
	if err := s.webhooks.Process(r.Context(), payload, sig); err != nil {
		switch {
		case errors.Is(err, billing.ErrBadSignature):
			writeError(w, domain.ErrUnauthorized)
		case errors.Is(err, billing.ErrUnknownProduct):
			badRequest(w, "unknown product")
		default:
			writeError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
}
