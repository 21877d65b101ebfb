package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type EventParticipantRepository struct {
	db *gorm.DB
}

func NewEventParticipantRepository(db *gorm.DB) *EventParticipantRepository {
	return &EventParticipantRepository{
		db: db,
	}
}

func (s *EventParticipantRepository) Get(ctx context.Context, eventID string, userID int64) (*entity.EventParticipant, error) {
	var participant entity.EventParticipant
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&participant).Error
	if err != nil {
		return nil, translate(err, "user %d is not registered for event %s", userID, eventID)
	}
	return &participant, nil
}

func (s *EventParticipantRepository) Count(ctx context.Context, eventID string) (int64, error) {
	count, err := countParticipants(s.db.WithContext(ctx), eventID)
	return count, translate(err, "count participants of event %s", eventID)
}

func (s *EventParticipantRepository) GetByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error) {
	var participants []entity.EventParticipant
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&participants).Error
	if err != nil {
		return nil, translate(err, "list participants of event %s", eventID)
	}
	return participants, nil
}

// JoinWithCapacityCheck locks the event row, re-reads the participant count
// and creates the row in the same transaction, so concurrent joins at the
// boundary stop exactly at maxPeople.
func (s *EventParticipantRepository) JoinWithCapacityCheck(ctx context.Context, eventID string, userID int64, maxPeople int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event entity.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", eventID).Error; err != nil {
			return err
		}

		count, err := countParticipants(tx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(maxPeople) {
			return errorz.Conflict("event %s is already full", eventID)
		}

		return tx.Create(&entity.EventParticipant{
			EventID: eventID,
			UserID:  userID,
		}).Error
	})
	return translate(err, "user %d is already registered for event %s", userID, eventID)
}

func (s *EventParticipantRepository) Delete(ctx context.Context, eventID string, userID int64) error {
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.EventParticipant{}).Error
	return translate(err, "remove user %d from event %s", userID, eventID)
}

func countParticipants(tx *gorm.DB, eventID string) (int64, error) {
	var count int64
	err := tx.Model(&entity.EventParticipant{}).
		Joins("JOIN users ON users.id = event_participants.user_id AND users.deleted_at IS NULL").
		Where("event_participants.event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
