package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/billing"
)

func TestCreditBalance(t *testing.T) {
	d := newDeps()
	d.credits.balance = func(_ context.Context, userID uuid.UUID) (int, error) {
		assert.Equal(t, testUserID, userID)
		return 3, nil
	}
	router := newTestRouter(t, d, authAs(testUserID, testEmail))

	rec := doJSON(router, http.MethodGet, "/api/credits", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credits":3}`, rec.Body.String())
}

func TestCreditBalance_Unauthenticated(t *testing.T) {
	d := newDeps()
	router := newTestRouter(t, d, noAuth)

	rec := doJSON(router, http.MethodGet, "/api/credits", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentWebhook(t *testing.T) {
	d := newDeps()
	var gotPayload, gotSig string
	d.webhooks.process = func(_ context.Context, payload []byte, signature string) error {
		gotPayload, gotSig = string(payload), signature
		return nil
	}
	router := newTestRouter(t, d, authAs(testUserID, testEmail))

	req := doJSONWithHeader(router, "/api/webhooks/payments",
		`{"id":"evt_1","type":"checkout.session.completed"}`, "X-Webhook-Signature", "abc123")

	require.Equal(t, http.StatusOK, req.Code)
	assert.Contains(t, gotPayload, "evt_1")
	assert.Equal(t, "abc123", gotSig)
}

func TestPaymentWebhook_BadSignature(t *testing.T) {
	d := newDeps()
	d.webhooks.process = func(context.Context, []byte, string) error {
		return billing.ErrBadSignature
	}
	router := newTestRouter(t, d, authAs(testUserID, testEmail))

	rec := doJSON(router, http.MethodPost, "/api/webhooks/payments", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentWebhook_UnknownProduct(t *testing.T) {
	d := newDeps()
	d.webhooks.process = func(context.Context, []byte, string) error {
		return billing.ErrUnknownProduct
	}
	router := newTestRouter(t, d, authAs(testUserID, testEmail))

	rec := doJSON(router, http.MethodPost, "/api/webhooks/payments", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown product")
}
