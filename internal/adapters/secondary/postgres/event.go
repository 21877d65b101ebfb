package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// CreateWithHost persists the event and the host's implicit participation as
// one transaction, so the host-as-participant invariant holds from the first
// committed state.
func (s *EventRepository) CreateWithHost(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Create(&entity.EventParticipant{
			EventID: event.ID,
			UserID:  event.HostID,
		}).Error
	})
	if err != nil {
		return nil, translate(err, "create event %q", event.Title)
	}
	return event, nil
}

func (s *EventRepository) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "event %s not found", id)
	}
	return &event, nil
}

func (s *EventRepository) GetAll(ctx context.Context, filter dto.EventFilter) ([]entity.Event, error) {
	query := s.db.WithContext(ctx).Model(&entity.Event{})

	if filter.HostID != nil {
		query = query.Where("host_id = ?", *filter.HostID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.CityID != nil {
		query = query.Where("city_id = ?", *filter.CityID)
	}
	if filter.ClubID != nil {
		query = query.Where("club_id = ?", *filter.ClubID)
	}

	var events []entity.Event
	err := query.Order("start_time").Find(&events).Error
	if err != nil {
		return nil, translate(err, "list events")
	}
	return events, nil
}

func (s *EventRepository) GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Find(&events).Error
	if err != nil {
		return nil, translate(err, "list events of club %s", clubID)
	}
	return events, nil
}
