package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/light-bringer/storefront-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// 1. Load configuration from environment variables
	config := loadConfig()

	log.Printf("Starting Storefront Service...")
	log.Printf("Catalog feed: %s", config.CatalogPath)
	log.Printf("Cart store: %s", config.CartDBPath)
	log.Printf("HTTP Port: %s", config.HTTPPort)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		CatalogPath:    config.CatalogPath,
		CartDBPath:     config.CartDBPath,
		WhatsAppNumber: config.WhatsAppNumber,
		HandoffDelay:   config.HandoffDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create the HTTP engine and mount routes
	if config.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	serviceOpts.StorefrontHandler.Register(engine)

	httpServer := &http.Server{
		Addr:    ":" + config.HTTPPort,
		Handler: engine,
	}

	// 4. Start HTTP server in background
	go func() {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	return nil
}

// Config holds application configuration.
type Config struct {
	Env            string
	HTTPPort       string
	CatalogPath    string
	CartDBPath     string
	WhatsAppNumber string
	HandoffDelay   time.Duration
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	cfg := Config{
		Env:            getEnv("APP_ENV", "dev"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		CatalogPath:    getEnv("CATALOG_PATH", "data/products.json"),
		CartDBPath:     getEnv("CART_DB_PATH", "data/cartdb"),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
	}

	delayMs := getEnv("HANDOFF_DELAY_MS", "1500")
	if ms, err := strconv.Atoi(delayMs); err == nil && ms > 0 {
		cfg.HandoffDelay = time.Duration(ms) * time.Millisecond
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
