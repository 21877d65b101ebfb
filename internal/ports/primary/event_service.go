package primary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// EventService defines the interface for event-related use cases
type EventService interface {
	Create(ctx context.Context, payload dto.CreateEvent, hostID int64) (*dto.Event, error)
	Get(ctx context.Context, id string) (*dto.Event, error)
	GetAll(ctx context.Context, filter dto.EventFilter) ([]dto.Event, error)
	Join(ctx context.Context, eventID string, userID int64) error
	Leave(ctx context.Context, eventID string, userID int64) error
}
