package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"velodata/internal/domain/entity"
	"velodata/internal/domain/repository"
	"velodata/internal/domain/service"
	"velodata/pkg/csvutil"
	"velodata/pkg/errors"
	"velodata/pkg/logger"
)

type ExportUseCase struct {
	listingRepo repository.ListingRepository
	jpyToUsd    float64
}

func NewExportUseCase(listingRepo repository.ListingRepository, jpyToUsd float64) *ExportUseCase {
	if jpyToUsd <= 0 {
		jpyToUsd = service.DefaultJpyToUsd
	}
	return &ExportUseCase{
		listingRepo: listingRepo,
		jpyToUsd:    jpyToUsd,
	}
}

type ExportInput struct {
	Platform      string   `json:"platform"`
	ListingIDs    []string `json:"listing_ids"`
	MarginPercent float64  `json:"margin_percent"`
}

type ExportResult struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
	RowCount int    `json:"row_count"`
	// Skipped counts requested IDs with no matching listing. The found
	// subset is exported regardless.
	Skipped int `json:"skipped"`
}

func validateMargin(marginPercent float64) error {
	if marginPercent < service.MinMarginPercent || marginPercent > service.MaxMarginPercent {
		return errors.BadRequest(
			fmt.Sprintf("Margin must be between %d and %d percent", service.MinMarginPercent, service.MaxMarginPercent),
			nil,
		)
	}
	return nil
}

// Export fetches the requested listings, prices each one at the desired net
// margin, and serializes platform-specific CSV rows. IDs with no matching
// listing are skipped with a warning rather than failing the batch.
func (uc *ExportUseCase) Export(ctx context.Context, input ExportInput) (*ExportResult, error) {
	schedule, ok := service.ScheduleFor(service.Platform(input.Platform))
	if !ok {
		return nil, errors.BadRequest("Unknown export platform", nil)
	}

	if len(input.ListingIDs) == 0 {
		return nil, errors.BadRequest("No listing IDs provided", nil)
	}

	if err := validateMargin(input.MarginPercent); err != nil {
		return nil, err
	}

	exportID := uuid.New().String()

	listings, err := uc.listingRepo.GetByIDs(ctx, input.ListingIDs)
	if err != nil {
		logger.Error("Export %s: listing fetch failed: %v", exportID, err)
		return nil, errors.Internal("Export failed", err)
	}

	if len(listings) == 0 {
		return nil, errors.New("NOT_FOUND", "No matching listings to export", 404, nil)
	}

	skipped := len(input.ListingIDs) - len(listings)
	if skipped > 0 {
		logger.Warn("Export %s: %d of %d requested listings not found, exporting the rest",
			exportID, skipped, len(input.ListingIDs))
	}

	var rows []map[string]string
	for _, listing := range listings {
		pricing, err := uc.priceListing(listing, input.MarginPercent, schedule)
		if err != nil {
			logger.Error("Export %s: pricing failed for %s: %v", exportID, listing.ID, err)
			return nil, err
		}

		switch schedule.Platform {
		case service.PlatformEbay:
			rows = append(rows, service.MapEbayRow(listing, pricing))
		case service.PlatformShopify:
			rows = append(rows, service.MapShopifyRows(listing, pricing)...)
		}
	}

	headers := service.EbayHeaders
	prefix := "ebay-listings"
	if schedule.Platform == service.PlatformShopify {
		headers = service.ShopifyHeaders
		prefix = "shopify-products"
	}

	csv, err := csvutil.Write(headers, rows)
	if err != nil {
		logger.Error("Export %s: serialization failed: %v", exportID, err)
		return nil, errors.Internal("Export failed", err)
	}

	logger.Info("Export %s: %d listings, %d rows, platform=%s", exportID, len(listings), len(rows), schedule.Platform)

	return &ExportResult{
		Filename: csvutil.Filename(prefix, time.Now()),
		CSV:      csv,
		RowCount: len(rows),
		Skipped:  skipped,
	}, nil
}

// PreviewPrice prices a single listing without building rows. The dashboard's
// live preview goes through this, so preview and export numbers are computed
// by the same engine and always agree.
func (uc *ExportUseCase) PreviewPrice(ctx context.Context, listingID, platform string, marginPercent float64) (*service.PricingResult, error) {
	schedule, ok := service.ScheduleFor(service.Platform(platform))
	if !ok {
		return nil, errors.BadRequest("Unknown export platform", nil)
	}

	if err := validateMargin(marginPercent); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return uc.priceListing(listing, marginPercent, schedule)
}

func (uc *ExportUseCase) priceListing(listing *entity.Listing, marginPercent float64, schedule service.FeeSchedule) (*service.PricingResult, error) {
	cost := float64(listing.PriceJPY) * uc.jpyToUsd
	shipping := schedule.ShippingCost(listing.NicheType)
	return service.ComputeSalePrice(cost, shipping, marginPercent, schedule)
}
