package router

import (
	"heritageflavors/internal/adapter/api/handler"
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPromoRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	promoHandler := handler.GetPromoHandler()

	promo := e.Group("/v1/promo")
	promo.Use(sessionMiddleware.Resolve)

	promo.GET("/countdown", promoHandler.GetCountdown) // GET /v1/promo/countdown - Festive banner snapshot

	e.GET("/v1/offers", promoHandler.ListOffers, sessionMiddleware.Resolve)
}

// SetupCountdownStreamRouter wires the live tick stream; the handler is
// built in main because it owns the websocket manager.
func SetupCountdownStreamRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, sessionMiddleware *middleware.SessionMiddleware) {
	e.GET("/v1/promo/countdown/ws", wsHandler.HandleCountdown, sessionMiddleware.Resolve)
}
