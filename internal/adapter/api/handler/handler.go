package handler

import (
	"velodata/internal/usecase"
)

var (
	listingHandler *ListingHandler
	exportHandler  *ExportHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	exportUseCase *usecase.ExportUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	exportHandler = NewExportHandler(exportUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetExportHandler() *ExportHandler {
	return exportHandler
}
