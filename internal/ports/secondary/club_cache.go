package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// ClubDetailCache is a short-TTL read cache for resolved club details.
// Misses are reported as NotFound; cache failures never fail a read path.
type ClubDetailCache interface {
	Get(ctx context.Context, clubID string) (*dto.ClubDetail, error)
	Set(ctx context.Context, detail *dto.ClubDetail) error
	Delete(ctx context.Context, clubID string) error
}
