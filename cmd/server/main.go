package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/cache"
	"gatepass/internal/config"
	"gatepass/internal/handler"
	"gatepass/internal/router"
	"gatepass/internal/service"
	"gatepass/internal/store"
)

// @title College Gate Pass API
// @version 1.0
// @description Gate pass workflow: students request passes, moderators review them, gatekeepers verify and consume them.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	dataStore := store.NewFileStore(cfg.DataFile)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize services
	authService := service.NewAuthService(dataStore)
	requestService := service.NewRequestService(dataStore, cacheClient, cfg.StatsCacheTTL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	requestHandler := handler.NewRequestHandler(requestService)
	gateHandler := handler.NewGateHandler(requestService)
	statsHandler := handler.NewStatsHandler(requestService)

	// Register routes
	router.Register(e, authHandler, requestHandler, gateHandler, statsHandler)

	log.Printf("datastore file: %s", cfg.DataFile)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
