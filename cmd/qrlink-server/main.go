package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxroyer/qrlink/pkg/qrlink/auth"
	"github.com/maxroyer/qrlink/pkg/qrlink/config"
	"github.com/maxroyer/qrlink/pkg/qrlink/database"
	"github.com/maxroyer/qrlink/pkg/qrlink/links"
	"github.com/maxroyer/qrlink/pkg/qrlink/models"
	"github.com/maxroyer/qrlink/pkg/qrlink/qr"
	"github.com/maxroyer/qrlink/pkg/qrlink/ratelimit"
	"github.com/maxroyer/qrlink/pkg/qrlink/redirect"
	"github.com/maxroyer/qrlink/pkg/qrlink/sweeper"
)

func main() {
	cfg := config.Load()

	// Ensure the database directory exists
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	// Connect to database
	if err := database.Connect(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	linkService := links.NewService(database.GetDB(), cfg.BaseURL)

	generator, err := qr.NewGenerator(cfg.QRSize, cfg.QRBrandingLogo)
	if err != nil {
		log.Fatalf("Failed to initialize QR generator: %v", err)
	}
	if cfg.QRBrandingLogo != "" {
		log.Printf("QR branding logo loaded from %s", cfg.QRBrandingLogo)
	}

	guard := ratelimit.NewGuard(cfg.RateLimitPerMinute)
	limit := ratelimit.Middleware(guard)
	gate := auth.RequireSecret(cfg.DeleteSecret)

	// Background tasks stop when the process receives a shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	guard.StartJanitor(ctx)
	go sweeper.New(linkService, cfg.SweepInterval).Run(ctx)

	// Set up Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "qrlink",
		})
	})

	// API routes
	api := r.Group("/api/v1")
	{
		linksHandler := links.NewHandler(linkService)
		linksHandler.RegisterRoutes(api, limit, gate)

		qrHandler := qr.NewHandler(generator)
		qrHandler.RegisterRoutes(api, limit)
	}

	// Serve static frontend files if web exists
	webPath := "./web"
	if _, err := os.Stat(filepath.Join(webPath, "index.html")); err == nil {
		r.StaticFile("/", filepath.Join(webPath, "index.html"))
		r.StaticFile("/app.js", filepath.Join(webPath, "app.js"))
		r.StaticFile("/styles.css", filepath.Join(webPath, "styles.css"))
		r.StaticFile("/favicon.ico", filepath.Join(webPath, "favicon.ico"))
		log.Println("Serving frontend from ./web")
	} else {
		log.Println("No frontend found at ./web - API only mode")
	}

	// Short code routes (public, must be registered LAST to avoid conflicts)
	redirectHandler := redirect.NewHandler(linkService, generator)
	redirectHandler.RegisterRoutes(r, limit)

	srv := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Starting qrlink server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
