// @title Itinerary Backend API
// @version 1.0
// @description Itinerary sequencing, route segmentation and view projection API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	_ "ITINERARY_BACK-END/docs" // This is required for swagger
	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/routes"
	"ITINERARY_BACK-END/internal/routing"
	"ITINERARY_BACK-END/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// pgxpool + simple protocol (required behind PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "itinerary-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Ping once at boot
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	itineraries := store.NewPostgresStore(pool, cfg.Database.QueryTimeout)
	if cfg.Database.AutoMigrate {
		if err := itineraries.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	// --- Route resolution ---

	var planner *routing.Planner
	var routeCache *routing.RedisCache
	if cfg.IsMapsConfigured() {
		directions, err := routing.NewDirectionsResolver(context.Background(), cfg.Maps.APIKey, cfg.Maps.DirectionsURL)
		if err != nil {
			log.Fatalf("directions: %v", err)
		}
		var resolver routing.Resolver = directions

		if cfg.IsRedisConfigured() {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			routeCache = routing.NewRedisCache(rdb, cfg.Redis.RouteTTL)
			resolver = routing.NewCachedResolver(resolver, routeCache)
		}
		planner = routing.NewPlanner(resolver, cfg.Maps.Concurrency, cfg.Maps.LegTimeout)
	}

	// --- HTTP Handlers ---

	itineraryHandler := handlers.NewItineraryHandler(itineraries, planner, cfg)
	var healthHandler *handlers.HealthHandler
	if routeCache != nil {
		healthHandler = handlers.NewHealthHandler(itineraries, routeCache)
	} else {
		healthHandler = handlers.NewHealthHandler(itineraries, nil)
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, itineraryHandler, healthHandler, &cfg.JWT)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
