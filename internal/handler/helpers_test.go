package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/handler"
	"github.com/tripweaver/backend/internal/middleware"
	"github.com/tripweaver/backend/internal/places"
	"github.com/tripweaver/backend/internal/prefs"
)

var (
	testUserID = uuid.MustParse("6b1c3f6e-9d7a-4c61-9b2f-0d3a8a8f4c11")
	testEmail  = "traveler@example.com"
)

type mockPlanner struct {
	plan   func(ctx context.Context, userID uuid.UUID, details domain.TripDetails) (domain.TripPlan, error)
	toggle func(plan domain.TripPlan, passengers domain.Passengers, target domain.ToggleTarget, itemID string) domain.TripPlan
	save   func(ctx context.Context, userID uuid.UUID, details domain.TripDetails, plan domain.TripPlan) (domain.Trip, error)
	get    func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error)
	list   func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

var _ handler.TripPlanner = (*mockPlanner)(nil)

func (m *mockPlanner) Plan(ctx context.Context, userID uuid.UUID, details domain.TripDetails) (domain.TripPlan, error) {
	return m.plan(ctx, userID, details)
}

func (m *mockPlanner) Toggle(plan domain.TripPlan, passengers domain.Passengers, target domain.ToggleTarget, itemID string) domain.TripPlan {
	return m.toggle(plan, passengers, target, itemID)
}

func (m *mockPlanner) Save(ctx context.Context, userID uuid.UUID, details domain.TripDetails, plan domain.TripPlan) (domain.Trip, error) {
	return m.save(ctx, userID, details, plan)
}

func (m *mockPlanner) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error) {
	return m.get(ctx, userID, tripID)
}

func (m *mockPlanner) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, userID, p)
}

type mockCredits struct {
	balance func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (m *mockCredits) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.balance(ctx, userID)
}

type mockSearcher struct {
	search func(keyword string) []domain.Location
}

func (m *mockSearcher) Search(keyword string) []domain.Location {
	return m.search(keyword)
}

type mockPlaces struct {
	do func(ctx context.Context, req places.Request) places.Response
}

func (m *mockPlaces) Do(ctx context.Context, req places.Request) places.Response {
	return m.do(ctx, req)
}

type mockMailer struct {
	sendItinerary func(ctx context.Context, userID, tripID uuid.UUID, email string) error
}

func (m *mockMailer) SendItinerary(ctx context.Context, userID, tripID uuid.UUID, email string) error {
	return m.sendItinerary(ctx, userID, tripID, email)
}

type mockWebhooks struct {
	process func(ctx context.Context, payload []byte, signature string) error
}

func (m *mockWebhooks) Process(ctx context.Context, payload []byte, signature string) error {
	return m.process(ctx, payload, signature)
}

// deps bundles every Server dependency with working zero-value defaults so a
// test overrides only what it exercises.
type deps struct {
	planner  *mockPlanner
	credits  *mockCredits
	searcher *mockSearcher
	places   *mockPlaces
	mailer   *mockMailer
	webhooks *mockWebhooks
	prefs    prefs.Store
}

func newDeps() *deps {
	return &deps{
		planner:  &mockPlanner{},
		credits:  &mockCredits{},
		searcher: &mockSearcher{},
		places:   &mockPlaces{},
		mailer:   &mockMailer{},
		webhooks: &mockWebhooks{},
		prefs:    prefs.NewMemoryStore(),
	}
}

// authAs injects a fixed identity the way the JWT middleware would.
func authAs(userID uuid.UUID, email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.ContextWithUser(r.Context(), userID, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// noAuth passes requests through without identity, simulating a request that
// bypassed the JWT middleware.
func noAuth(next http.Handler) http.Handler {
	return next
}

func newTestRouter(t *testing.T, d *deps, auth func(http.Handler) http.Handler) chi.Router {
	t.Helper()
	s := handler.NewServer(
		d.planner, d.credits, d.searcher, d.places, d.mailer, d.webhooks, d.prefs)
	r := chi.NewRouter()
	s.Routes(r, auth)
	return r
}

func doJSONWithHeader(router http.Handler, path, body, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(header, value)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
