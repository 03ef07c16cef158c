package router

import (
	"heritageflavors/internal/adapter/api/handler"
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCompareRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	compareHandler := handler.GetCompareHandler()

	compare := e.Group("/v1/compare")
	compare.Use(sessionMiddleware.Resolve)

	compare.GET("", compareHandler.GetComparison)          // GET /v1/compare - Comparison table contents in insertion order
	compare.POST("/:productId", compareHandler.ToggleCompare) // POST /v1/compare/:productId - Toggle membership (max 3)
	compare.DELETE("", compareHandler.ClearComparison)     // DELETE /v1/compare - Empty the set
}
