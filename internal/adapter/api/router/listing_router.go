package router

import (
	"velodata/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)
}
