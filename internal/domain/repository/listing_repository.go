package repository

import (
	"context"

	"velodata/internal/domain/entity"
)

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// GetByIDs returns the listings matching the given IDs. Missing IDs are
	// skipped; result order is not guaranteed to match request order.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Listing, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error)
}
