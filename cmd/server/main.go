package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplocal/backend-go/internal/api"
	"github.com/shoplocal/backend-go/internal/config"
	"github.com/shoplocal/backend-go/internal/database"
	"github.com/shoplocal/backend-go/internal/handler"
	"github.com/shoplocal/backend-go/internal/repository"
	"github.com/shoplocal/backend-go/internal/scrape"
	"github.com/shoplocal/backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(cfg.DBPath); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	shopRepo := repository.NewShopRepository(db)
	userRepo := repository.NewUserRepository(db)

	fetcher := scrape.NewFetcher(cfg.CSVSource)
	cache := scrape.NewCache(fetcher, cfg.CacheTTL)

	shopService := service.NewShopService(shopRepo, cache, cfg.MaxDistanceKM)
	insightsService := service.NewInsightsService(shopRepo, cache)

	router := api.SetupRouter(cfg, api.Handlers{
		Shop:      handler.NewShopHandler(shopService),
		Seller:    handler.NewSellerHandler(shopRepo),
		Assistant: handler.NewAssistantHandler(insightsService),
		Auth:      handler.NewAuthHandler(userRepo, cfg.JWTSecret),
	})

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
