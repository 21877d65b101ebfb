package service

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/utils/clock"
	"github.com/clubhub/clubhub-api/internal/domain/utils/validator"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type EventService struct {
	repo            secondary.EventRepository
	participantRepo secondary.EventParticipantRepository
	catalogRepo     secondary.CatalogRepository
	clubRepo        secondary.ClubRepository
	memberRepo      secondary.ClubMemberRepository
	clock           clock.Clock

	logger *logger.Logger
}

func NewEventService(
	lg *logger.Logger,
	storage secondary.EventRepository,
	participantStorage secondary.EventParticipantRepository,
	catalogStorage secondary.CatalogRepository,
	clubStorage secondary.ClubRepository,
	memberStorage secondary.ClubMemberRepository,
	clk clock.Clock,
) *EventService {
	return &EventService{
		repo:            storage,
		participantRepo: participantStorage,
		catalogRepo:     catalogStorage,
		clubRepo:        clubStorage,
		memberRepo:      memberStorage,
		clock:           clk,
		logger:          lg,
	}
}

func (s *EventService) Create(ctx context.Context, payload dto.CreateEvent, hostID int64) (*dto.Event, error) {
	now := s.clock.Now()

	if !validator.EventTitle(payload.Title) {
		return nil, errorz.InvalidArgument("event title must be between 1 and 100 characters")
	}
	if !validator.EventDescription(payload.Description) {
		return nil, errorz.InvalidArgument("event description must be at most 1000 characters")
	}
	if !validator.EventWindow(payload.StartTime, payload.EndTime, now) {
		return nil, errorz.InvalidArgument("event must start in the future and end after it starts")
	}
	if !validator.MaxPeople(payload.MaxPeople) {
		return nil, errorz.InvalidArgument("event capacity must be at least %d", validator.MinPeople)
	}

	if _, err := s.catalogRepo.GetCategory(ctx, payload.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.catalogRepo.GetCity(ctx, payload.CityID); err != nil {
		return nil, err
	}

	if payload.ClubID != nil {
		if _, err := s.clubRepo.Get(ctx, *payload.ClubID); err != nil {
			return nil, err
		}
		member, err := s.memberRepo.Get(ctx, *payload.ClubID, hostID)
		if err != nil {
			if errorz.IsKind(err, errorz.KindNotFound) {
				return nil, errorz.Forbidden("user %d is not a member of club %s", hostID, *payload.ClubID)
			}
			return nil, err
		}
		if member.Status != valueobject.MemberStatusApproved {
			return nil, errorz.Forbidden("user %d is not an approved member of club %s", hostID, *payload.ClubID)
		}
	}

	event := &entity.Event{
		HostID:      hostID,
		ClubID:      payload.ClubID,
		Title:       payload.Title,
		Description: payload.Description,
		CategoryID:  payload.CategoryID,
		CityID:      payload.CityID,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		MaxPeople:   payload.MaxPeople,
	}

	created, err := s.repo.CreateWithHost(ctx, event)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("(event: %s) created by user %d", created.ID, hostID)

	result := dto.NewEvent(*created, now)
	return &result, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*dto.Event, error) {
	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.NewEvent(*event, s.clock.Now())
	return &result, nil
}

func (s *EventService) GetAll(ctx context.Context, filter dto.EventFilter) ([]dto.Event, error) {
	events, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := make([]dto.Event, len(events))
	for i, event := range events {
		result[i] = dto.NewEvent(event, now)
	}
	return result, nil
}

func (s *EventService) Join(ctx context.Context, eventID string, userID int64) error {
	event, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return err
	}

	if phase := event.Phase(s.clock.Now()); phase != valueobject.PhaseUpcoming {
		return errorz.Conflict("event %s is %s and no longer open for registration", eventID, phase)
	}

	// the host's implicit row makes this catch hosts as well
	_, err = s.participantRepo.Get(ctx, eventID, userID)
	switch {
	case err == nil:
		return errorz.Conflict("user %d is already a participant of event %s", userID, eventID)
	case !errorz.IsKind(err, errorz.KindNotFound):
		return err
	}

	// capacity is re-checked inside the transaction under an event row lock
	return s.participantRepo.JoinWithCapacityCheck(ctx, eventID, userID, event.MaxPeople)
}

func (s *EventService) Leave(ctx context.Context, eventID string, userID int64) error {
	event, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return err
	}

	if event.HostID == userID {
		return errorz.Conflict("the host cannot leave event %s", eventID)
	}
	if phase := event.Phase(s.clock.Now()); phase != valueobject.PhaseUpcoming {
		return errorz.Conflict("event %s is %s and registrations can no longer change", eventID, phase)
	}

	if _, err := s.participantRepo.Get(ctx, eventID, userID); err != nil {
		if errorz.IsKind(err, errorz.KindNotFound) {
			return errorz.Conflict("user %d is not a participant of event %s", userID, eventID)
		}
		return err
	}

	return s.participantRepo.Delete(ctx, eventID, userID)
}
