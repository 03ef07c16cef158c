package router

import (
	"heritageflavors/internal/adapter/api/handler"
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	products := e.Group("/v1/products")
	products.Use(sessionMiddleware.Resolve)

	products.GET("", catalogHandler.ListProducts)                // GET /v1/products - Filtered/sorted shop listing
	products.GET("/:id", catalogHandler.GetProduct)              // GET /v1/products/:id - Detail view, records recently-viewed
	products.GET("/:id/related", catalogHandler.GetRelatedProducts) // GET /v1/products/:id/related - Same-category picks
	products.GET("/:id/order-link", catalogHandler.GetOrderLink) // GET /v1/products/:id/order-link - WhatsApp inquiry link

	e.GET("/v1/categories", catalogHandler.ListCategories, sessionMiddleware.Resolve)
}
