package primary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// ClubService defines the interface for club-related use cases
type ClubService interface {
	Create(ctx context.Context, payload dto.CreateClub, leaderID int64) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetDetail(ctx context.Context, id string) (*dto.ClubDetail, error)
	GetAll(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, error)
	// Update applies PATCH semantics: only non-nil fields change.
	Update(ctx context.Context, id string, patch dto.UpdateClub, actorID int64) (*entity.Club, error)
	// Replace applies PUT semantics: all mutable fields are taken from the
	// payload, optional ones reset to their defaults.
	Replace(ctx context.Context, id string, payload dto.CreateClub, actorID int64) (*entity.Club, error)
	Delete(ctx context.Context, id string, actorID int64) error

	Join(ctx context.Context, clubID string, userID int64) error
	Leave(ctx context.Context, clubID string, userID int64) error
	ApproveMember(ctx context.Context, clubID string, memberID, actorID int64) error
	RejectMember(ctx context.Context, clubID string, memberID, actorID int64) error
}
