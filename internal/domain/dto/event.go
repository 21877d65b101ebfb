package dto

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

// CreateEvent carries the validated event-creation input into the domain.
type CreateEvent struct {
	Title       string
	Description string
	ClubID      *string
	CategoryID  int64
	CityID      int64
	StartTime   time.Time
	EndTime     time.Time
	MaxPeople   int
}

// EventFilter narrows event listings; nil fields match everything.
type EventFilter struct {
	HostID     *int64
	CategoryID *int64
	CityID     *int64
	ClubID     *string
}

// Event is an event enriched with its derived temporal state.
type Event struct {
	entity.Event
	Phase valueobject.EventPhase
}

// NewEvent attaches the phase derived at the given instant.
func NewEvent(e entity.Event, now time.Time) Event {
	return Event{Event: e, Phase: e.Phase(now)}
}
