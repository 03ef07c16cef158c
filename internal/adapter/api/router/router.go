package router

import (
	"heritageflavors/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	SetupCatalogRouter(e, sessionMiddleware)
	SetupCartRouter(e, sessionMiddleware)
	SetupCompareRouter(e, sessionMiddleware)
	SetupRecentRouter(e, sessionMiddleware)
	SetupPromoRouter(e, sessionMiddleware)
	SetupHealthRouter(e)
}
