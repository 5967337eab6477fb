package places_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/places"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newClient spins up a fake provider and returns a Client pointed at it.
func newClient(t *testing.T, handler http.HandlerFunc) *places.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return places.NewClient(srv.URL, "test-key", discardLogger())
}

func TestDo_Autocomplete(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/autocomplete/json", r.URL.Path)
		assert.Equal(t, "eiffel", r.URL.Query().Get("input"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"predictions":[{"description":"Eiffel Tower, Paris","place_id":"p1"}]}`))
	})

	got := c.Do(context.Background(), places.Request{Action: places.ActionAutocomplete, Input: "eiffel"})

	require.Empty(t, got.Error)
	require.Len(t, got.Predictions, 1)
	assert.Equal(t, "Eiffel Tower, Paris", got.Predictions[0].Description)
	assert.Equal(t, "p1", got.Predictions[0].PlaceID)
}

func TestDo_Details(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		w.Write([]byte(`{"result":{"place_id":"p1","name":"Eiffel Tower",
			"formatted_address":"Champ de Mars, Paris",
			"geometry":{"location":{"lat":48.8584,"lng":2.2945}},
			"rating":4.7,"types":["tourist_attraction"],
			"photos":[{"photo_reference":"ref-1"}]}}`))
	})

	got := c.Do(context.Background(), places.Request{Action: places.ActionDetails, PlaceID: "p1"})

	require.Empty(t, got.Error)
	require.NotNil(t, got.Place)
	assert.Equal(t, "Eiffel Tower", got.Place.Name)
	assert.Equal(t, 48.8584, got.Place.Lat)
	assert.Equal(t, "ref-1", got.Place.PhotoRef)
}

func TestDo_NearbyFallsBackToVicinity(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		w.Write([]byte(`{"results":[{"place_id":"p2","name":"Cafe","vicinity":"5 Rue Cler"}]}`))
	})

	got := c.Do(context.Background(), places.Request{Action: places.ActionNearby, Lat: 48.85, Lon: 2.29})

	require.Len(t, got.Places, 1)
	assert.Equal(t, "5 Rue Cler", got.Places[0].Address)
}

func TestDo_UpstreamErrorDegrades(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	got := c.Do(context.Background(), places.Request{Action: places.ActionSearch, Query: "museums"})

	// Degraded response: empty non-nil result set plus an error string —
	// never a Go error or a crash surfaced to the HTTP caller.
	require.NotNil(t, got.Places)
	assert.Empty(t, got.Places)
	assert.NotEmpty(t, got.Error)
}

func TestDo_PhotoBuildsURLWithoutUpstreamCall(t *testing.T) {
	called := false
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	got := c.Do(context.Background(), places.Request{Action: places.ActionPhoto, PhotoRef: "ref-9", MaxWidth: 800})

	assert.False(t, called)
	assert.Contains(t, got.PhotoURL, "photo_reference=ref-9")
	assert.Contains(t, got.PhotoURL, "maxwidth=800")
}

func TestDo_UnknownAction(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {})

	got := c.Do(context.Background(), places.Request{Action: "teleport"})

	assert.NotEmpty(t, got.Error)
}

func TestDo_ContextCancellation(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got := c.Do(ctx, places.Request{Action: places.ActionAutocomplete, Input: "lo"})

	// A superseded in-flight lookup surfaces as a degraded response.
	assert.NotEmpty(t, got.Error)
}
