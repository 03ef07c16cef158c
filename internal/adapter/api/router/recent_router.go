package router

import (
	"heritageflavors/internal/adapter/api/handler"
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRecentRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	recentHandler := handler.GetRecentHandler()

	e.GET("/v1/recently-viewed", recentHandler.GetRecentlyViewed, sessionMiddleware.Resolve)
}
