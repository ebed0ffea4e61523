package usecase

import (
	"context"

	"velodata/internal/domain/entity"
	"velodata/internal/domain/repository"
	"velodata/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

func (uc *ListingUseCase) GetListingByID(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListListings(ctx context.Context, niche, source, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	filter := make(map[string]interface{})

	if niche != "" {
		if !entity.NicheType(niche).Valid() {
			return nil, 0, errors.BadRequest("Unknown niche type", nil)
		}
		filter["nicheType"] = niche
	}

	if source != "" {
		filter["source.sourceId"] = source
	}

	return uc.listingRepo.List(ctx, filter, sort, limit, offset)
}
