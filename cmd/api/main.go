// Command api is the deck import API server.
//
// Usage:
//
//	deck-api
//	API_PORT=8080 DATABASE_URL=postgres://... deck-api

// @title Deck Import API
// @version 1.0.0
// @description Imports deck lists in bulk JSON, CSV or text form, reconciles them against the saved deck and fills in card data from Scryfall.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Deck Import
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Malotkya/CapstoneProject/internal/api"
	"github.com/Malotkya/CapstoneProject/internal/api/handler"
	"github.com/Malotkya/CapstoneProject/internal/cache"
	"github.com/Malotkya/CapstoneProject/internal/config"
	"github.com/Malotkya/CapstoneProject/internal/db"
	"github.com/Malotkya/CapstoneProject/internal/importer"
	"github.com/Malotkya/CapstoneProject/internal/provider/scryfall"

	_ "github.com/Malotkya/CapstoneProject/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open deck store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	cls, err := cfg.Classifier()
	if err != nil {
		logger.Error("Failed to load classifier", "error", err)
		os.Exit(1)
	}

	client := scryfall.NewClient(cfg.ScryfallBaseURL, cfg.ScryfallUserAgent,
		cfg.ScryfallRateLimit, cfg.ScryfallTimeout, logger)
	pipeline := importer.New(client, cls, logger)

	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	h := handler.New(st, pipeline, appCache, cfg, logger)
	router := api.NewRouter(h, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.ScryfallTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Deck Import API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
