package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// CreateWithHost persists the event together with the host's implicit
	// participation row in one transaction.
	CreateWithHost(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context, filter dto.EventFilter) ([]entity.Event, error)
	// GetByClubID enumerates every event still tied to the club, the read
	// contract the cascade coordinator plans against.
	GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
}
