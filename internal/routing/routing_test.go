package routing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/models"
)

func stop(name string, lat, lng float64, mode models.TravelMode) models.Destination {
	return models.Destination{
		ID:         uuid.New(),
		Name:       name,
		Location:   name,
		Lat:        lat,
		Lng:        lng,
		Date:       "2024-04-01",
		Time:       "10:00",
		Type:       models.TypeAttraction,
		TravelMode: mode,
	}
}

type fakeResolver struct {
	mu    sync.Mutex
	calls int
	fail  map[string]error
}

func (f *fakeResolver) Resolve(ctx context.Context, req Request) (Route, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err, ok := f.fail[req.Key()]; ok {
		return Route{}, err
	}
	return Route{
		Path:            []LatLng{req.Origin, req.Destination},
		DurationSeconds: 600 * (req.Leg.DestinationIndex),
		DistanceMeters:  1000,
	}, nil
}

func TestRequests(t *testing.T) {
	list := []models.Destination{
		stop("A", 35.0, 139.0, models.TravelModeDriving),
		stop("B", 35.1, 139.1, models.TravelModeDriving),
		stop("C", 34.9, 135.7, models.TravelModeNone),
		stop("D", 35.0, 135.8, models.TravelModeTransit),
	}
	reqs := Requests(list)
	require.Len(t, reqs, 2)
	assert.Equal(t, list[0].ID, reqs[0].OriginID)
	assert.Equal(t, list[1].ID, reqs[0].DestinationID)
	assert.Equal(t, LatLng{Lat: 35.1, Lng: 139.1}, reqs[0].Destination)
	assert.Equal(t, models.TravelModeTransit, reqs[1].Mode)
	assert.Equal(t, 2, reqs[1].Leg.OriginIndex)
	assert.NotEqual(t, reqs[0].Key(), reqs[1].Key())
}

func TestPlannerResolve(t *testing.T) {
	list := []models.Destination{
		stop("A", 35.0, 139.0, models.TravelModeDriving),
		stop("B", 35.1, 139.1, models.TravelModeWalking),
		stop("C", 35.2, 139.2, models.TravelModeDriving),
		stop("D", 35.3, 139.3, models.TravelModeNone),
	}
	reqs := Requests(list)
	resolver := &fakeResolver{fail: map[string]error{reqs[1].Key(): errors.New("ZERO_RESULTS")}}

	plan := NewPlanner(resolver, 4, time.Second).Resolve(context.Background(), list)
	assert.Equal(t, 2, resolver.calls)
	require.Len(t, plan.Routes, 1)
	assert.Equal(t, 0, plan.Routes[0].Leg.OriginIndex)
	assert.Equal(t, "10 minutes", plan.Routes[0].ETA)
	require.Len(t, plan.Warnings, 1)
	assert.Equal(t, 2, plan.Warnings[0].Leg.DestinationIndex)
	assert.Contains(t, plan.Warnings[0].Message, "ZERO_RESULTS")
}

func TestPlannerNoLegs(t *testing.T) {
	resolver := &fakeResolver{}
	plan := NewPlanner(resolver, 0, 0).Resolve(context.Background(), []models.Destination{stop("A", 1, 1, models.TravelModeDriving)})
	assert.Empty(t, plan.Routes)
	assert.Empty(t, plan.Warnings)
	assert.Zero(t, resolver.calls)
}

func TestApplyDiscardsStaleRoutes(t *testing.T) {
	a := stop("A", 35.0, 139.0, models.TravelModeDriving)
	b := stop("B", 35.1, 139.1, models.TravelModeDriving)
	c := stop("C", 35.2, 139.2, models.TravelModeDriving)
	before := []models.Destination{a, b, c}
	plan := NewPlanner(&fakeResolver{}, 2, 0).Resolve(context.Background(), before)
	require.Len(t, plan.Routes, 2)

	// b moved and c switched to walking while routes were in flight
	movedB := b
	movedB.Lat = 36.0
	c2 := c
	c2.TravelMode = models.TravelModeWalking
	assert.Empty(t, Apply([]models.Destination{a, movedB, c2}, plan).Routes)

	// a deleted: the b->c route survives and is re-indexed
	kept := Apply([]models.Destination{b, c}, plan)
	require.Len(t, kept.Routes, 1)
	assert.Equal(t, 0, kept.Routes[0].Leg.OriginIndex)
	assert.Equal(t, 1, kept.Routes[0].Leg.DestinationIndex)

	assert.Equal(t, plan, Apply(before, plan))
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:      "0 min",
		-5:     "0 min",
		59:     "0 min",
		60:     "1 minute",
		600:    "10 minutes",
		3600:   "1 hour",
		5400:   "1 hour, 30 minutes",
		86400:  "1 day",
		90061:  "1 day, 1 hour",
		200000: "2 days, 7 hours",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "seconds=%d", in)
	}
}

func TestDecodePolyline(t *testing.T) {
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	assert.Equal(t, []LatLng{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}, points)

	empty, err := DecodePolyline("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DecodePolyline("_p~iF~ps|U_")
	assert.Error(t, err)
}

func TestRouteMidpoint(t *testing.T) {
	_, ok := Route{}.Midpoint()
	assert.False(t, ok)
	mid, ok := Route{Path: []LatLng{{1, 1}, {2, 2}, {3, 3}}}.Midpoint()
	assert.True(t, ok)
	assert.Equal(t, LatLng{2, 2}, mid)
}

func TestDirectionsResolver(t *testing.T) {
	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("mode") == "transit" {
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","routes":[]}`)
			return
		}
		fmt.Fprint(w, `{"status":"OK","routes":[{"overview_polyline":{"points":"_p~iF~ps|U_ulLnnqC"},
			"legs":[{"distance":{"value":1200},"duration":{"value":900}}]}]}`)
	}))
	defer srv.Close()

	r := &DirectionsResolver{client: srv.Client(), baseURL: srv.URL, apiKey: "test-key"}
	req := Request{
		Origin:      LatLng{Lat: 35.6586, Lng: 139.7454},
		Destination: LatLng{Lat: 35.7148, Lng: 139.7967},
		Mode:        models.TravelModeWalking,
	}
	route, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 900, route.DurationSeconds)
	assert.Equal(t, 1200, route.DistanceMeters)
	assert.Len(t, route.Path, 2)

	q := gotQuery.Load().(url.Values)
	assert.Equal(t, []string{"walking"}, q["mode"])
	assert.Equal(t, []string{"35.6586,139.7454"}, q["origin"])
	assert.Equal(t, []string{"test-key"}, q["key"])

	req.Mode = models.TravelModeTransit
	_, err = r.Resolve(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestDirectionsResolverServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)
	}))
	defer srv.Close()

	r := &DirectionsResolver{client: srv.Client(), baseURL: srv.URL, apiKey: "bad"}
	_, err := r.Resolve(context.Background(), Request{Mode: models.TravelModeDriving})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestNewDirectionsResolverRequiresKey(t *testing.T) {
	_, err := NewDirectionsResolver(context.Background(), "", "")
	assert.Error(t, err)
}

type memoryCache struct {
	mu     sync.Mutex
	routes map[string]Route
	getErr error
}

func (m *memoryCache) Get(ctx context.Context, key string) (Route, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return Route{}, false, m.getErr
	}
	r, ok := m.routes[key]
	return r, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, route Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[key] = route
	return nil
}

func TestCachedResolver(t *testing.T) {
	list := []models.Destination{
		stop("A", 35.0, 139.0, models.TravelModeDriving),
		stop("B", 35.1, 139.1, models.TravelModeDriving),
	}
	req := Requests(list)[0]
	next := &fakeResolver{}
	cache := &memoryCache{routes: map[string]Route{}}
	r := NewCachedResolver(next, cache)

	first, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)

	cache.getErr = errors.New("connection refused")
	_, err = r.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
