package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

// CascadeRepository applies a cascade plan as a single transaction: every
// event-level step plus the membership/club removal commit together or roll
// back together, so partial cascades are never observable.
type CascadeRepository struct {
	db *gorm.DB
}

func NewCascadeRepository(db *gorm.DB) *CascadeRepository {
	return &CascadeRepository{
		db: db,
	}
}

func (s *CascadeRepository) Apply(ctx context.Context, plan dto.CascadePlan) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range plan.Steps {
			if err := applyStep(tx, step); err != nil {
				return err
			}
		}

		switch plan.Trigger {
		case valueobject.TriggerMemberLeave:
			return tx.Where("club_id = ? AND user_id = ?", plan.ClubID, plan.UserID).
				Delete(&entity.ClubMember{}).Error
		case valueobject.TriggerClubDelete:
			if err := tx.Where("club_id = ?", plan.ClubID).
				Delete(&entity.ClubMember{}).Error; err != nil {
				return err
			}
			return tx.Delete(&entity.Club{}, "id = ?", plan.ClubID).Error
		}
		return fmt.Errorf("unknown cascade trigger %q", plan.Trigger)
	})
	return translate(err, "apply %s cascade for club %s", plan.Trigger, plan.ClubID)
}

func applyStep(tx *gorm.DB, step dto.CascadeStep) error {
	switch step.Action {
	case valueobject.ActionDeleteEvent:
		// participations go first so no row outlives its event
		if err := tx.Where("event_id = ?", step.EventID).
			Delete(&entity.EventParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Event{}, "id = ?", step.EventID).Error
	case valueobject.ActionRemoveParticipation:
		return tx.Where("event_id = ? AND user_id = ?", step.EventID, step.UserID).
			Delete(&entity.EventParticipant{}).Error
	case valueobject.ActionDetachFromClub:
		return tx.Model(&entity.Event{}).
			Where("id = ?", step.EventID).
			Update("club_id", nil).Error
	}
	return fmt.Errorf("unknown cascade action %q", step.Action)
}
