package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lapillo/auth"
	"lapillo/availability"
	"lapillo/catalog"
	"lapillo/config"
	"lapillo/db"
	"lapillo/guestlink"
	"lapillo/middleware"
	"lapillo/models"
	"lapillo/notify"
	"lapillo/properties"
	"lapillo/ratelim"
	"lapillo/requests"
	"lapillo/routes"
	"lapillo/seed"
	"lapillo/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func buildHandlers(cfg *config.Config, d *db.Database) *routes.Handlers {
	sink := notify.NewSink(cfg.SMTP)

	return &routes.Handlers{
		Auth:   auth.NewHandler(cfg.JWTSecret, d),
		AuthMW: middleware.NewAuth(cfg.JWTSecret, d),
		RL:     ratelim.NewRateLimiter(),

		Properties:      properties.NewHandler(d.Properties),
		Beaches:         catalog.NewResource[models.Beach](d.Beaches, "Beach"),
		Restaurants:     catalog.NewResource[models.Restaurant](d.Restaurants, "Restaurant"),
		Experiences:     catalog.NewResource[models.Experience](d.Experiences, "Experience"),
		Rentals:         catalog.NewResource[models.Rental](d.Rentals, "Rental"),
		MapInfo:         catalog.NewResource[models.MapInfo](d.MapInfo, "Map entry"),
		Transports:      catalog.NewResource[models.Transport](d.Transports, "Transport"),
		LocalEvents:     catalog.NewResource[models.LocalEvent](d.LocalEvents, "Event"),
		NightlifeEvents: catalog.NewResource[models.NightlifeEvent](d.NightlifeEvents, "Event"),
		Troubleshooting: catalog.NewResource[models.Troubleshooting](d.Troubleshooting, "Guide"),
		Supermarket:     catalog.NewSingleton[models.Supermarket](d.Supermarket, "Supermarket"),
		Availability:    availability.NewHandler(d),

		Intake:       requests.NewIntake(d, sink),
		RequestAdmin: requests.NewAdmin(d),
		GuestLinks:   guestlink.NewHandler(d.GuestBookings, cfg.PublicBaseURL),
		Weather:      weather.NewClient(),
		Seed:         seed.Handler(d, cfg),
	}
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	database, err := db.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("mongo indexes: %v", err)
	}
	cancel()

	handlers := buildHandlers(cfg, database)

	router := httprouter.New()
	router.GET("/health", Index)
	routes.AddAllRoutes(router, handlers)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	// Disconnect only after Shutdown has drained in-flight requests.
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := database.Close(closeCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
