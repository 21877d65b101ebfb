package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// ClubRepository defines the interface for club data access
type ClubRepository interface {
	// CreateWithLeader persists the club together with the leader's implicit
	// approved membership row in one transaction.
	CreateWithLeader(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	// GetAll excludes clubs whose leader is soft-deleted.
	GetAll(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
}
