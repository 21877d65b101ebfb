package valueobject

import "time"

// EventPhase is the temporal state of an event relative to "now". It is
// always derived from the stored start/end pair and never persisted, so it
// cannot drift from wall-clock reality.
type EventPhase string

const (
	PhaseUpcoming EventPhase = "UPCOMING"
	PhaseOngoing  EventPhase = "ONGOING"
	PhaseEnded    EventPhase = "ENDED"
)

// PhaseOf classifies an event: UPCOMING while now < start, ONGOING while
// start <= now < end, ENDED once now >= end.
func PhaseOf(start, end, now time.Time) EventPhase {
	switch {
	case now.Before(start):
		return PhaseUpcoming
	case now.Before(end):
		return PhaseOngoing
	default:
		return PhaseEnded
	}
}
