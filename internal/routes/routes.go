package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, itineraryHandler *handlers.ItineraryHandler, healthHandler *handlers.HealthHandler, jwtCfg *config.JWTConfig) {
	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Itinerary routes
	mux.HandleFunc("/api/v1/itinerary", middleware.AuthMiddleware(itineraryHandler.Itinerary, jwtCfg))
	mux.HandleFunc("/api/v1/itinerary/destinations", middleware.AuthMiddleware(itineraryHandler.Destinations, jwtCfg))
	mux.HandleFunc("/api/v1/itinerary/destinations/", middleware.AuthMiddleware(itineraryHandler.Destinations, jwtCfg))
	mux.HandleFunc("/api/v1/itinerary/reorder", middleware.AuthMiddleware(itineraryHandler.Reorder, jwtCfg))
	mux.HandleFunc("/api/v1/itinerary/routes", middleware.AuthMiddleware(itineraryHandler.Routes, jwtCfg))

	// API docs
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("Itinerary backend is running."))
}
