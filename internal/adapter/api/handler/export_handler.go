package handler

import (
	"strconv"

	"velodata/internal/usecase"
	"velodata/pkg/errors"
	"velodata/pkg/response"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

type exportRequest struct {
	Platform      string   `json:"platform" validate:"required,oneof=ebay shopify"`
	ListingIDs    []string `json:"listing_ids" validate:"required,min=1"`
	MarginPercent float64  `json:"margin_percent" validate:"min=0,max=500"`
}

func (h *ExportHandler) CreateExport(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.exportUseCase.Export(c.Request().Context(), usecase.ExportInput{
		Platform:      req.Platform,
		ListingIDs:    req.ListingIDs,
		MarginPercent: req.MarginPercent,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ExportHandler) PreviewPrice(c echo.Context) error {
	listingID := c.QueryParam("listing_id")
	if listingID == "" {
		return response.Error(c, errors.BadRequest("listing_id is required", nil))
	}

	margin, err := strconv.ParseFloat(c.QueryParam("margin_percent"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("margin_percent must be a number", nil))
	}

	result, err := h.exportUseCase.PreviewPrice(
		c.Request().Context(),
		listingID,
		c.QueryParam("platform"),
		margin,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
