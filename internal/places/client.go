// Package places proxies autocomplete, details, nearby, text-search, and
// photo lookups to an external places provider, reshaping the provider's
// responses into a stable internal schema. Upstream failures degrade to an
// empty result set with an Error field; they are never surfaced as a crash.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Action selects which provider endpoint a gateway request targets.
type Action string

const (
	ActionAutocomplete Action = "autocomplete"
	ActionDetails      Action = "details"
	ActionNearby       Action = "nearby"
	ActionSearch       Action = "search"
	ActionPhoto        Action = "photo"
)

// Request is the single inbound shape for all gateway actions; only the
// fields relevant to the chosen action are read.
type Request struct {
	Action   Action  `json:"action"`
	Input    string  `json:"input,omitempty"`    // autocomplete
	PlaceID  string  `json:"placeId,omitempty"`  // details
	Lat      float64 `json:"lat,omitempty"`      // nearby
	Lon      float64 `json:"lon,omitempty"`      // nearby
	Radius   int     `json:"radius,omitempty"`   // nearby, meters
	Keyword  string  `json:"keyword,omitempty"`  // nearby filter
	Query    string  `json:"query,omitempty"`    // search
	PhotoRef string  `json:"photoRef,omitempty"` // photo
	MaxWidth int     `json:"maxWidth,omitempty"` // photo
}

// Prediction is one autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

// Place is the reshaped provider place record.
type Place struct {
	PlaceID  string   `json:"placeId"`
	Name     string   `json:"name"`
	Address  string   `json:"address,omitempty"`
	Lat      float64  `json:"lat,omitempty"`
	Lon      float64  `json:"lon,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
	Types    []string `json:"types,omitempty"`
	PhotoRef string   `json:"photoRef,omitempty"`
}

// Response is the action-specific result. Exactly one data field is
// populated on success; Error carries the degraded-failure detail.
type Response struct {
	Predictions []Prediction `json:"predictions,omitempty"`
	Place       *Place       `json:"place,omitempty"`
	Places      []Place      `json:"places,omitempty"`
	PhotoURL    string       `json:"photoUrl,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Client talks to the places provider. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a Client for the provider at baseURL.
func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Do executes one gateway action. It always returns a usable Response; an
// upstream non-OK status or transport failure yields empty results plus an
// Error string, with the detail logged server-side.
func (c *Client) Do(ctx context.Context, req Request) Response {
	switch req.Action {
	case ActionAutocomplete:
		return c.autocomplete(ctx, req)
	case ActionDetails:
		return c.details(ctx, req)
	case ActionNearby:
		return c.nearby(ctx, req)
	case ActionSearch:
		return c.textSearch(ctx, req)
	case ActionPhoto:
		return c.photo(req)
	default:
		return Response{Error: fmt.Sprintf("unknown action %q", req.Action)}
	}
}

func (c *Client) autocomplete(ctx context.Context, req Request) Response {
	q := url.Values{}
	q.Set("input", req.Input)

	var upstream struct {
		Predictions []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"predictions"`
	}
	if err := c.get(ctx, "/place/autocomplete/json", q, &upstream); err != nil {
		c.log.Warn("places autocomplete failed", "error", err)
		return Response{Predictions: []Prediction{}, Error: "autocomplete unavailable"}
	}

	out := make([]Prediction, 0, len(upstream.Predictions))
	for _, p := range upstream.Predictions {
		out = append(out, Prediction{Description: p.Description, PlaceID: p.PlaceID})
	}
	return Response{Predictions: out}
}

func (c *Client) details(ctx context.Context, req Request) Response {
	q := url.Values{}
	q.Set("place_id", req.PlaceID)

	var upstream struct {
		Result rawPlace `json:"result"`
	}
	if err := c.get(ctx, "/place/details/json", q, &upstream); err != nil {
		c.log.Warn("places details failed", "place_id", req.PlaceID, "error", err)
		return Response{Error: "place details unavailable"}
	}

	p := upstream.Result.reshape()
	return Response{Place: &p}
}

func (c *Client) nearby(ctx context.Context, req Request) Response {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", req.Lat, req.Lon))
	radius := req.Radius
	if radius <= 0 {
		radius = 3000
	}
	q.Set("radius", fmt.Sprint(radius))
	if req.Keyword != "" {
		q.Set("keyword", req.Keyword)
	}
	return c.placeList(ctx, "/place/nearbysearch/json", q, "nearby search unavailable")
}

func (c *Client) textSearch(ctx context.Context, req Request) Response {
	q := url.Values{}
	q.Set("query", req.Query)
	return c.placeList(ctx, "/place/textsearch/json", q, "text search unavailable")
}

// photo does not hit the provider; it builds the signed redirect URL the
// frontend can embed directly.
func (c *Client) photo(req Request) Response {
	maxWidth := req.MaxWidth
	if maxWidth <= 0 {
		maxWidth = 400
	}
	q := url.Values{}
	q.Set("photo_reference", req.PhotoRef)
	q.Set("maxwidth", fmt.Sprint(maxWidth))
	q.Set("key", c.apiKey)
	return Response{PhotoURL: c.baseURL + "/place/photo?" + q.Encode()}
}

func (c *Client) placeList(ctx context.Context, path string, q url.Values, degraded string) Response {
	var upstream struct {
		Results []rawPlace `json:"results"`
	}
	if err := c.get(ctx, path, q, &upstream); err != nil {
		c.log.Warn("places lookup failed", "path", path, "error", err)
		return Response{Places: []Place{}, Error: degraded}
	}

	out := make([]Place, 0, len(upstream.Results))
	for _, r := range upstream.Results {
		out = append(out, r.reshape())
	}
	return Response{Places: out}
}

// rawPlace mirrors the provider's place shape.
type rawPlace struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Vicinity         string `json:"vicinity"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating float64  `json:"rating"`
	Types  []string `json:"types"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

func (r rawPlace) reshape() Place {
	p := Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Lat:     r.Geometry.Location.Lat,
		Lon:     r.Geometry.Location.Lng,
		Rating:  r.Rating,
		Types:   r.Types,
	}
	if p.Address == "" {
		p.Address = r.Vicinity
	}
	if len(r.Photos) > 0 {
		p.PhotoRef = r.Photos[0].PhotoReference
	}
	return p
}

// get performs one provider GET and decodes the JSON body into dst.
// A non-2xx status is an error carrying the status and a body excerpt.
func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
