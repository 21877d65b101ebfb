package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// EventParticipantRepository defines the interface for event participation data access
type EventParticipantRepository interface {
	Get(ctx context.Context, eventID string, userID int64) (*entity.EventParticipant, error)
	// Count counts participants whose user is not soft-deleted.
	Count(ctx context.Context, eventID string) (int64, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error)
	// JoinWithCapacityCheck re-reads the participant count under an event row
	// lock and creates the row only while capacity remains.
	JoinWithCapacityCheck(ctx context.Context, eventID string, userID int64, maxPeople int) error
	Delete(ctx context.Context, eventID string, userID int64) error
}
