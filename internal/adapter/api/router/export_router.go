package router

import (
	"velodata/internal/adapter/api/handler"
	"velodata/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupExportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	exportHandler := handler.GetExportHandler()

	exports := e.Group("/v1/exports")
	exports.Use(authMiddleware.Authenticate)
	exports.POST("", exportHandler.CreateExport, rateLimitMiddleware.Limit("export"))
	exports.GET("/preview", exportHandler.PreviewPrice, rateLimitMiddleware.Limit("preview"))
}
