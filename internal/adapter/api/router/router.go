package router

import (
	"velodata/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e)
	SetupListingRouter(e)
	SetupExportRouter(e, authMiddleware, rateLimitMiddleware)
}
