// Package billing processes payment-provider webhook events and converts
// completed checkouts into credit grants.
package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// EventCheckoutCompleted is the only event type that grants credits.
// Every other type is acknowledged and ignored so the provider stops retrying.
const EventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrBadSignature means the payload failed HMAC verification.
	ErrBadSignature = errors.New("billing: invalid webhook signature")

	// ErrUnknownProduct means the checkout referenced a product that maps
	// to no credit amount. The event must be rejected, not silently
	// dropped, so the provider surfaces it for manual review.
	ErrUnknownProduct = errors.New("billing: unknown product")
)

// productCredits maps purchasable product IDs to the credits they grant.
// A product missing here is a configuration error, never a zero-credit grant.
var productCredits = map[string]int{
	"trip_single":  1,
	"trip_pack_5":  5,
	"trip_pack_12": 12,
}

// Event is the subset of a checkout webhook payload we act on.
// ClientReferenceID carries the purchasing user's ID set at checkout time.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		ClientReferenceID string `json:"client_reference_id"`
		ProductID         string `json:"product_id"`
	} `json:"data"`
}

// CreditLedger is the slice of the credit store the webhook needs.
type CreditLedger interface {
	AddCredits(ctx context.Context, userID uuid.UUID, amount int, productID, eventID string) (int, error)
}

// Processor verifies and applies payment webhook events.
type Processor struct {
	ledger CreditLedger
	secret []byte
	log    *slog.Logger
}

func NewProcessor(ledger CreditLedger, secret string, log *slog.Logger) *Processor {
	return &Processor{ledger: ledger, secret: []byte(secret), log: log}
}

// Process verifies the payload signature and, for a completed checkout,
// credits the referenced user. Non-checkout events verify and return nil.
func (p *Processor) Process(ctx context.Context, payload []byte, signature string) error {
	if !p.verify(payload, signature) {
		return ErrBadSignature
	}

	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("billing: parse event: %w", err)
	}

	if ev.Type != EventCheckoutCompleted {
		p.log.Debug("ignoring webhook event", "event_id", ev.ID, "type", ev.Type)
		return nil
	}

	userID, err := uuid.Parse(ev.Data.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("billing: bad client_reference_id %q: %w", ev.Data.ClientReferenceID, err)
	}

	credits, ok := productCredits[ev.Data.ProductID]
	if !ok {
		p.log.Error("webhook for unmapped product",
			"event_id", ev.ID, "product_id", ev.Data.ProductID)
		return fmt.Errorf("%w: %q", ErrUnknownProduct, ev.Data.ProductID)
	}

	balance, err := p.ledger.AddCredits(ctx, userID, credits, ev.Data.ProductID, ev.ID)
	if err != nil {
		return fmt.Errorf("billing: grant credits: %w", err)
	}

	p.log.Info("credits granted",
		"event_id", ev.ID, "user_id", userID,
		"product_id", ev.Data.ProductID, "credits", credits, "balance", balance)
	return nil
}

// verify checks the hex HMAC-SHA256 of the payload in constant time.
func (p *Processor) verify(payload []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, p.secret)
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), want)
}

// Sign computes the hex HMAC-SHA256 signature for a payload. Exposed for
// tests and local webhook simulation.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
