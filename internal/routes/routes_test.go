package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/middleware"
	"ITINERARY_BACK-END/internal/store"
)

func newTestMux(t *testing.T) (*http.ServeMux, string) {
	t.Helper()
	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: "routes-secret", AccessTokenTTL: time.Hour},
		Itinerary: config.ItineraryConfig{Currency: "JPY", DisplayCurrency: "USD", ExchangeRate: 0.0058},
	}
	s := store.NewMemoryStore()
	mux := http.NewServeMux()
	SetupRoutes(mux, handlers.NewItineraryHandler(s, nil, cfg), handlers.NewHealthHandler(s, nil), &cfg.JWT)

	token, err := middleware.GenerateToken(uuid.New(), "traveler@example.com", &cfg.JWT)
	require.NoError(t, err)
	return mux, token
}

func TestHealthRoutes(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, path := range []string{"/healthz", "/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestItineraryRoutesRequireToken(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/itinerary", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddThroughMux(t *testing.T) {
	mux, token := newTestMux(t)

	body := `{"name":"Kinkaku-ji","location":"Kyoto","lat":35.0394,"lng":135.7292,"date":"2024-04-02","time":"10:00","type":"attraction","budget":500}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itinerary/destinations", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/itinerary?sort=name", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kinkaku-ji")
}

func TestRootRoute(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
