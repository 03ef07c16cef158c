package router

import (
	"heritageflavors/internal/adapter/api/handler"
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(sessionMiddleware.Resolve)

	cart.GET("", cartHandler.GetCart)                           // GET /v1/cart - Full ledger with subtotal and badge count
	cart.POST("/items", cartHandler.AddItem)                    // POST /v1/cart/items - Add or merge a product
	cart.PATCH("/items/:productId", cartHandler.UpdateQuantity) // PATCH /v1/cart/items/:productId - Adjust quantity by delta
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)    // DELETE /v1/cart/items/:productId - Remove a row
}
