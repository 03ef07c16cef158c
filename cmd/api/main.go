package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"heritageflavors/internal/adapter/api"
	"heritageflavors/internal/adapter/api/handler"
	apimiddleware "heritageflavors/internal/adapter/api/middleware"
	"heritageflavors/internal/adapter/api/router"
	"heritageflavors/internal/adapter/repository"
	"heritageflavors/internal/infrastructure/ratelimit"
	"heritageflavors/internal/infrastructure/websocket"
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	sessionRepo, err := repository.NewSqliteSessionRepository(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer sessionRepo.Close()

	catalogRepo := repository.NewMemoryCatalogRepository()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, cfg.StoreName, cfg.WhatsAppNumber)
	cartUseCase := usecase.NewCartUseCase(catalogRepo, sessionRepo)
	compareUseCase := usecase.NewCompareUseCase(catalogRepo)
	recentUseCase := usecase.NewRecentUseCase(catalogRepo, sessionRepo)
	promoUseCase := usecase.NewPromoUseCase(catalogRepo, time.Duration(cfg.CountdownHours)*time.Hour)

	handler.Setup(catalogUseCase, cartUseCase, compareUseCase, recentUseCase, promoUseCase)

	// Push countdown ticks to connected clients until the window closes
	go promoUseCase.StartCountdownBroadcast(ctx, wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	sessionMiddleware := apimiddleware.NewSessionMiddleware()
	wsHandler := handler.NewWebSocketHandler(wsManager, limiter)

	router.Setup(e, sessionMiddleware)
	router.SetupCountdownStreamRouter(e, wsHandler, sessionMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
