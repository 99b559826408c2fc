package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"

	"ITINERARY_BACK-END/internal/models"
)

// DefaultDirectionsURL is the Google Directions web service endpoint
const DefaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"

// ErrNoRoute is returned when the service finds no route for a leg
var ErrNoRoute = errors.New("no route found")

// DirectionsResolver resolves legs with the Google Directions web service
type DirectionsResolver struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewDirectionsResolver builds a resolver on a Google API HTTP transport.
// The API key is sent as the key query parameter.
func NewDirectionsResolver(ctx context.Context, apiKey, baseURL string, opts ...option.ClientOption) (*DirectionsResolver, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is required")
	}
	if baseURL == "" {
		baseURL = DefaultDirectionsURL
	}
	opts = append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	client, _, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create directions client: %w", err)
	}
	return &DirectionsResolver{client: client, baseURL: baseURL, apiKey: apiKey}, nil
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Resolve implements Resolver
func (r *DirectionsResolver) Resolve(ctx context.Context, req Request) (Route, error) {
	q := url.Values{}
	q.Set("origin", formatLatLng(req.Origin))
	q.Set("destination", formatLatLng(req.Destination))
	q.Set("mode", directionsMode(req.Mode))
	q.Set("key", r.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Route{}, fmt.Errorf("build directions request: %w", err)
	}
	resp, err := r.client.Do(httpReq)
	if err != nil {
		return Route{}, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Route{}, fmt.Errorf("directions request: unexpected status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return Route{}, ErrNoRoute
	default:
		return Route{}, fmt.Errorf("directions status %s: %s", body.Status, body.ErrorMessage)
	}
	if len(body.Routes) == 0 {
		return Route{}, ErrNoRoute
	}

	first := body.Routes[0]
	path, err := DecodePolyline(first.OverviewPolyline.Points)
	if err != nil {
		return Route{}, fmt.Errorf("decode overview polyline: %w", err)
	}
	route := Route{Path: path}
	for _, leg := range first.Legs {
		route.DurationSeconds += leg.Duration.Value
		route.DistanceMeters += leg.Distance.Value
	}
	return route, nil
}

func formatLatLng(p LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

func directionsMode(m models.TravelMode) string {
	switch m {
	case models.TravelModeWalking, models.TravelModeTransit:
		return strings.ToLower(string(m))
	}
	return "driving"
}
