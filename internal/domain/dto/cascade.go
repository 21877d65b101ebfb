package dto

import "github.com/clubhub/clubhub-api/internal/domain/valueobject"

// CascadeStep is the decided fate of one event affected by a member leave or
// a club deletion. Steps with ActionNone are never emitted into a plan.
type CascadeStep struct {
	Action  valueobject.CascadeAction
	EventID string
	// UserID is set only for REMOVE_PARTICIPATION steps.
	UserID int64
}

// CascadePlan is the full set of event-level side effects for one triggering
// operation. The storage layer applies every step together with the
// membership or club removal inside a single transaction: either all of it
// commits or none of it does.
type CascadePlan struct {
	Trigger valueobject.CascadeTrigger
	ClubID  string
	// UserID is the departing member for MEMBER_LEAVE plans, zero otherwise.
	UserID int64
	Steps  []CascadeStep
}
