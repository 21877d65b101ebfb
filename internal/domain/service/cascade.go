package service

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/utils/clock"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
)

// CascadeCoordinator decides the fate of every event affected by a member
// leaving a club or a club being deleted. It only plans: the resulting
// CascadePlan is handed to the storage layer, which applies all steps and the
// membership/club removal inside one transaction.
type CascadeCoordinator struct {
	eventRepo       secondary.EventRepository
	participantRepo secondary.EventParticipantRepository
	clock           clock.Clock
}

func NewCascadeCoordinator(
	eventStorage secondary.EventRepository,
	participantStorage secondary.EventParticipantRepository,
	clk clock.Clock,
) *CascadeCoordinator {
	return &CascadeCoordinator{
		eventRepo:       eventStorage,
		participantRepo: participantStorage,
		clock:           clk,
	}
}

// PlanMemberLeave builds the user-scoped plan: per event, the departing
// user's role and the event's phase at "now" pick the action. Events already
// ongoing or ended are never touched, so the user's participation history
// stays intact.
func (c *CascadeCoordinator) PlanMemberLeave(ctx context.Context, clubID string, userID int64) (dto.CascadePlan, error) {
	plan := dto.CascadePlan{
		Trigger: valueobject.TriggerMemberLeave,
		ClubID:  clubID,
		UserID:  userID,
	}

	events, err := c.eventRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return plan, err
	}

	now := c.clock.Now()
	for _, event := range events {
		participates := false
		if event.HostID != userID {
			_, err := c.participantRepo.Get(ctx, event.ID, userID)
			switch {
			case err == nil:
				participates = true
			case errorz.IsKind(err, errorz.KindNotFound):
				// not involved in this event
			default:
				return plan, err
			}
		}
		role := event.RoleOf(userID, participates)

		action := valueobject.Decide(event.Phase(now), role, valueobject.TriggerMemberLeave)
		if action == valueobject.ActionNone {
			continue
		}
		plan.Steps = append(plan.Steps, dto.CascadeStep{
			Action:  action,
			EventID: event.ID,
			UserID:  userID,
		})
	}

	return plan, nil
}

// PlanClubDelete builds the club-scoped plan: every upcoming event is purged,
// everything already underway or finished is detached so its history
// survives the club's removal.
func (c *CascadeCoordinator) PlanClubDelete(ctx context.Context, clubID string) (dto.CascadePlan, error) {
	plan := dto.CascadePlan{
		Trigger: valueobject.TriggerClubDelete,
		ClubID:  clubID,
	}

	events, err := c.eventRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return plan, err
	}

	now := c.clock.Now()
	for _, event := range events {
		action := valueobject.Decide(event.Phase(now), valueobject.RoleNone, valueobject.TriggerClubDelete)
		if action == valueobject.ActionNone {
			continue
		}
		plan.Steps = append(plan.Steps, dto.CascadeStep{
			Action:  action,
			EventID: event.ID,
		})
	}

	return plan, nil
}
