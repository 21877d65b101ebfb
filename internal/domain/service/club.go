package service

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/utils/validator"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type ClubService struct {
	repo        secondary.ClubRepository
	memberRepo  secondary.ClubMemberRepository
	cascadeRepo secondary.CascadeRepository
	coordinator *CascadeCoordinator
	cache       secondary.ClubDetailCache

	logger *logger.Logger
}

func NewClubService(
	lg *logger.Logger,
	storage secondary.ClubRepository,
	memberStorage secondary.ClubMemberRepository,
	cascadeStorage secondary.CascadeRepository,
	coordinator *CascadeCoordinator,
	cache secondary.ClubDetailCache,
) *ClubService {
	return &ClubService{
		repo:        storage,
		memberRepo:  memberStorage,
		cascadeRepo: cascadeStorage,
		coordinator: coordinator,
		cache:       cache,
		logger:      lg,
	}
}

func (s *ClubService) Create(ctx context.Context, payload dto.CreateClub, leaderID int64) (*entity.Club, error) {
	if err := validateClubFields(payload.Name, payload.Description, payload.MaxPeople); err != nil {
		return nil, err
	}

	club := &entity.Club{
		Name:        payload.Name,
		Description: payload.Description,
		LeaderID:    leaderID,
		MaxPeople:   payload.MaxPeople,
		Tags:        payload.Tags,
	}

	// duplicate names surface as Conflict from the unique constraint
	return s.repo.CreateWithLeader(ctx, club)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.repo.Get(ctx, id)
}

func (s *ClubService) GetDetail(ctx context.Context, id string) (*dto.ClubDetail, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil {
		return cached, nil
	} else if !errorz.IsKind(err, errorz.KindNotFound) {
		s.logger.Warnf("(club: %s) detail cache read failed: %v", id, err)
	}

	club, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	roster, err := s.memberRepo.GetRoster(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ClubDetail{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		LeaderID:    club.LeaderID,
		MaxPeople:   club.MaxPeople,
		Tags:        club.Tags,
		Members:     roster,
	}

	if err := s.cache.Set(ctx, detail); err != nil {
		s.logger.Warnf("(club: %s) detail cache write failed: %v", id, err)
	}

	return detail, nil
}

func (s *ClubService) GetAll(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, error) {
	return s.repo.GetAll(ctx, filter)
}

// Update applies PATCH semantics: only non-nil fields change.
func (s *ClubService) Update(ctx context.Context, id string, patch dto.UpdateClub, actorID int64) (*entity.Club, error) {
	club, err := s.authorizedClub(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		club.Name = *patch.Name
	}
	if patch.Description != nil {
		club.Description = *patch.Description
	}
	if patch.MaxPeople != nil {
		club.MaxPeople = *patch.MaxPeople
	}
	if patch.Tags != nil {
		club.Tags = *patch.Tags
	}

	return s.saveClub(ctx, club)
}

// Replace applies PUT semantics: every mutable field is taken from the
// payload, unspecified optional fields reset to their defaults.
func (s *ClubService) Replace(ctx context.Context, id string, payload dto.CreateClub, actorID int64) (*entity.Club, error) {
	club, err := s.authorizedClub(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	club.Name = payload.Name
	club.Description = payload.Description
	club.MaxPeople = payload.MaxPeople
	club.Tags = payload.Tags

	return s.saveClub(ctx, club)
}

func (s *ClubService) Delete(ctx context.Context, id string, actorID int64) error {
	if _, err := s.authorizedClub(ctx, id, actorID); err != nil {
		return err
	}

	plan, err := s.coordinator.PlanClubDelete(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cascadeRepo.Apply(ctx, plan); err != nil {
		return err
	}
	s.logger.Infof("(club: %s) deleted, cascade applied to %d events", id, len(plan.Steps))

	s.invalidateDetail(ctx, id)
	return nil
}

func (s *ClubService) Join(ctx context.Context, clubID string, userID int64) error {
	club, err := s.repo.Get(ctx, clubID)
	if err != nil {
		return err
	}

	member, err := s.memberRepo.Get(ctx, clubID, userID)
	switch {
	case err == nil:
		// gate on the stored status of this row, never on the enum itself
		switch member.Status {
		case valueobject.MemberStatusApproved:
			return errorz.Conflict("user %d is already a member of club %s", userID, clubID)
		case valueobject.MemberStatusPending:
			return errorz.Conflict("user %d already has an open join request for club %s", userID, clubID)
		case valueobject.MemberStatusRejected:
			return errorz.Forbidden("user %d is not allowed to join club %s", userID, clubID)
		}
	case !errorz.IsKind(err, errorz.KindNotFound):
		return err
	}

	// capacity is re-checked inside the transaction under a club row lock
	return s.memberRepo.JoinWithCapacityCheck(ctx, clubID, userID, club.MaxPeople)
}

func (s *ClubService) Leave(ctx context.Context, clubID string, userID int64) error {
	club, err := s.repo.Get(ctx, clubID)
	if err != nil {
		return err
	}

	if club.LeaderID == userID {
		return errorz.Conflict("the leader cannot leave club %s", clubID)
	}

	member, err := s.memberRepo.Get(ctx, clubID, userID)
	if err != nil {
		if errorz.IsKind(err, errorz.KindNotFound) {
			return errorz.Conflict("user %d is not a member of club %s", userID, clubID)
		}
		return err
	}
	if member.Status != valueobject.MemberStatusApproved {
		return errorz.Conflict("user %d is not an approved member of club %s", userID, clubID)
	}

	plan, err := s.coordinator.PlanMemberLeave(ctx, clubID, userID)
	if err != nil {
		return err
	}

	// steps and the membership removal commit together or not at all
	if err := s.cascadeRepo.Apply(ctx, plan); err != nil {
		return err
	}
	s.logger.Infof("(club: %s) user %d left, cascade applied to %d events", clubID, userID, len(plan.Steps))

	s.invalidateDetail(ctx, clubID)
	return nil
}

func (s *ClubService) ApproveMember(ctx context.Context, clubID string, memberID, actorID int64) error {
	club, err := s.authorizedClub(ctx, clubID, actorID)
	if err != nil {
		return err
	}

	member, err := s.memberRepo.Get(ctx, clubID, memberID)
	if err != nil {
		return err
	}
	if member.Status != valueobject.MemberStatusPending {
		return errorz.Conflict("join request of user %d in club %s is not pending", memberID, clubID)
	}

	if err := s.memberRepo.ApproveWithCapacityCheck(ctx, clubID, memberID, club.MaxPeople); err != nil {
		return err
	}

	s.invalidateDetail(ctx, clubID)
	return nil
}

func (s *ClubService) RejectMember(ctx context.Context, clubID string, memberID, actorID int64) error {
	if _, err := s.authorizedClub(ctx, clubID, actorID); err != nil {
		return err
	}

	member, err := s.memberRepo.Get(ctx, clubID, memberID)
	if err != nil {
		return err
	}
	if member.Status != valueobject.MemberStatusPending {
		return errorz.Conflict("join request of user %d in club %s is not pending", memberID, clubID)
	}

	return s.memberRepo.UpdateStatus(ctx, clubID, memberID, valueobject.MemberStatusRejected)
}

// authorizedClub loads the club and enforces the leader-only ownership rule.
func (s *ClubService) authorizedClub(ctx context.Context, clubID string, actorID int64) (*entity.Club, error) {
	club, err := s.repo.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.LeaderID != actorID {
		return nil, errorz.Forbidden("user %d is not the leader of club %s", actorID, clubID)
	}
	return club, nil
}

func (s *ClubService) saveClub(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	if err := validateClubFields(club.Name, club.Description, club.MaxPeople); err != nil {
		return nil, err
	}

	// shrinking capacity below the current approved count would break the
	// capacity invariant for existing members
	approved, err := s.memberRepo.CountApproved(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	if int64(club.MaxPeople) < approved {
		return nil, errorz.Conflict("club %s already has %d approved members", club.ID, approved)
	}

	updated, err := s.repo.Update(ctx, club)
	if err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, club.ID)
	return updated, nil
}

func (s *ClubService) invalidateDetail(ctx context.Context, clubID string) {
	if err := s.cache.Delete(ctx, clubID); err != nil {
		s.logger.Warnf("(club: %s) detail cache invalidation failed: %v", clubID, err)
	}
}

func validateClubFields(name, description string, maxPeople int) error {
	if !validator.ClubName(name) {
		return errorz.InvalidArgument("club name must be between 3 and 30 characters")
	}
	if !validator.ClubDescription(description) {
		return errorz.InvalidArgument("club description must be at most 500 characters")
	}
	if !validator.MaxPeople(maxPeople) {
		return errorz.InvalidArgument("club capacity must be at least %d", validator.MinPeople)
	}
	return nil
}
