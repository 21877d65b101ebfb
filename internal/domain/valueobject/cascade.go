package valueobject

// CascadeTrigger identifies the operation that caused event-level side
// effects: a single member leaving the club, or the club being deleted.
type CascadeTrigger string

const (
	TriggerMemberLeave CascadeTrigger = "MEMBER_LEAVE"
	TriggerClubDelete  CascadeTrigger = "CLUB_DELETE"
)

// EventRole is the departing user's standing in one affected event.
type EventRole string

const (
	RoleHost        EventRole = "HOST"
	RoleParticipant EventRole = "PARTICIPANT"
	RoleNone        EventRole = "NONE"
)

// CascadeAction is the fate decided for one event.
type CascadeAction string

const (
	// ActionNone leaves the event untouched, preserving history.
	ActionNone CascadeAction = "NONE"
	// ActionDeleteEvent removes the event together with its participations.
	ActionDeleteEvent CascadeAction = "DELETE_EVENT"
	// ActionRemoveParticipation removes only the departing user's row.
	ActionRemoveParticipation CascadeAction = "REMOVE_PARTICIPATION"
	// ActionDetachFromClub nulls the event's club reference so its history
	// survives the club's removal.
	ActionDetachFromClub CascadeAction = "DETACH_FROM_CLUB"
)

// Decide maps one affected event to its cascade action.
//
// A member leave is user-scoped: events already ongoing or ended are never
// mutated, an upcoming event loses either its whole existence (user hosts it)
// or just the user's participation row. A club delete is club-scoped: every
// upcoming event is purged outright, everything already underway or finished
// is detached and kept as orphaned history.
func Decide(phase EventPhase, role EventRole, trigger CascadeTrigger) CascadeAction {
	if trigger == TriggerClubDelete {
		if phase == PhaseUpcoming {
			return ActionDeleteEvent
		}
		return ActionDetachFromClub
	}

	if phase != PhaseUpcoming {
		return ActionNone
	}
	switch role {
	case RoleHost:
		return ActionDeleteEvent
	case RoleParticipant:
		return ActionRemoveParticipation
	}
	return ActionNone
}
