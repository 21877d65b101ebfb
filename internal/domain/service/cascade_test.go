package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/utils/clock"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

func stepsByEvent(plan dto.CascadePlan) map[string]dto.CascadeStep {
	steps := make(map[string]dto.CascadeStep, len(plan.Steps))
	for _, step := range plan.Steps {
		steps[step.EventID] = step
	}
	return steps
}

func TestCascadeCoordinator_PlanMemberLeave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newClubFixture()
	fx.store.addUser(1, "Alice")
	fx.store.addUser(2, "Bob")
	club := fx.store.addClub("Chess Club", 1, 10)

	upStart, upEnd := upcomingWindow()
	onStart, onEnd := ongoingWindow()
	endStart, endEnd := endedWindow()

	hostedUpcoming := fx.seedEvent(club.ID, 2, upStart, upEnd)
	joinedUpcoming := fx.seedEvent(club.ID, 1, upStart, upEnd)
	fx.store.addParticipant(joinedUpcoming.ID, 2)
	joinedOngoing := fx.seedEvent(club.ID, 1, onStart, onEnd)
	fx.store.addParticipant(joinedOngoing.ID, 2)
	hostedEnded := fx.seedEvent(club.ID, 2, endStart, endEnd)
	uninvolved := fx.seedEvent(club.ID, 1, upStart, upEnd)

	coordinator := NewCascadeCoordinator(
		&fakeEventRepo{store: fx.store},
		&fakeParticipantRepo{store: fx.store},
		clock.Fixed(testNow),
	)

	plan, err := coordinator.PlanMemberLeave(ctx, club.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, valueobject.TriggerMemberLeave, plan.Trigger)
	assert.Equal(t, club.ID, plan.ClubID)
	assert.Equal(t, int64(2), plan.UserID)

	steps := stepsByEvent(plan)
	require.Len(t, steps, 2)
	assert.Equal(t, valueobject.ActionDeleteEvent, steps[hostedUpcoming.ID].Action)
	assert.Equal(t, valueobject.ActionRemoveParticipation, steps[joinedUpcoming.ID].Action)
	assert.Equal(t, int64(2), steps[joinedUpcoming.ID].UserID)

	// ongoing and ended involvement, and events without the user, produce
	// no steps at all
	assert.NotContains(t, steps, joinedOngoing.ID)
	assert.NotContains(t, steps, hostedEnded.ID)
	assert.NotContains(t, steps, uninvolved.ID)
}

func TestCascadeCoordinator_PlanClubDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newClubFixture()
	fx.store.addUser(1, "Alice")
	club := fx.store.addClub("Chess Club", 1, 10)

	upStart, upEnd := upcomingWindow()
	onStart, onEnd := ongoingWindow()
	endStart, endEnd := endedWindow()

	upcoming := fx.seedEvent(club.ID, 1, upStart, upEnd)
	ongoing := fx.seedEvent(club.ID, 1, onStart, onEnd)
	ended := fx.seedEvent(club.ID, 1, endStart, endEnd)

	coordinator := NewCascadeCoordinator(
		&fakeEventRepo{store: fx.store},
		&fakeParticipantRepo{store: fx.store},
		clock.Fixed(testNow),
	)

	plan, err := coordinator.PlanClubDelete(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.TriggerClubDelete, plan.Trigger)
	assert.Zero(t, plan.UserID)

	steps := stepsByEvent(plan)
	require.Len(t, steps, 3)
	assert.Equal(t, valueobject.ActionDeleteEvent, steps[upcoming.ID].Action)
	assert.Equal(t, valueobject.ActionDetachFromClub, steps[ongoing.ID].Action)
	assert.Equal(t, valueobject.ActionDetachFromClub, steps[ended.ID].Action)
}

func TestCascadeCoordinator_PlanMemberLeave_NoEvents(t *testing.T) {
	t.Parallel()

	fx := newClubFixture()
	fx.store.addUser(1, "Alice")
	club := fx.store.addClub("Chess Club", 1, 10)

	coordinator := NewCascadeCoordinator(
		&fakeEventRepo{store: fx.store},
		&fakeParticipantRepo{store: fx.store},
		clock.Fixed(testNow),
	)

	plan, err := coordinator.PlanMemberLeave(context.Background(), club.ID, 2)
	require.NoError(t, err)
	assert.Empty(t, plan.Steps)
}
