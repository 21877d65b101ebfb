package entity

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

type Event struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// HostID is the hosting user; immutable after creation. The host is
	// always a participant via an ordinary participation row.
	HostID int64 `gorm:"not null;index"`
	// ClubID is nil for events detached from their club (or created without
	// one); detached events survive club deletion as orphaned history.
	ClubID      *string `gorm:"type:uuid;index"`
	Title       string  `gorm:"not null"`
	Description string
	CategoryID  int64 `gorm:"not null"`
	CityID      int64 `gorm:"not null"`
	// StartTime < EndTime for every persisted event.
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	MaxPeople int       `gorm:"not null"`
}

// Phase derives the event's temporal state at the given instant.
func (e Event) Phase(now time.Time) valueobject.EventPhase {
	return valueobject.PhaseOf(e.StartTime, e.EndTime, now)
}

// RoleOf reports the user's standing in the event given whether a
// participation row exists for them.
func (e Event) RoleOf(userID int64, participates bool) valueobject.EventRole {
	switch {
	case e.HostID == userID:
		return valueobject.RoleHost
	case participates:
		return valueobject.RoleParticipant
	default:
		return valueobject.RoleNone
	}
}
