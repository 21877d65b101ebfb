package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

// CreateWithLeader persists the club and the leader's implicit approved
// membership as one transaction, so the leader-as-member invariant holds
// from the first committed state.
func (s *ClubRepository) CreateWithLeader(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(club).Error; err != nil {
			return err
		}
		return tx.Create(&entity.ClubMember{
			ClubID: club.ID,
			UserID: club.LeaderID,
			Status: valueobject.MemberStatusApproved,
		}).Error
	})
	if err != nil {
		return nil, translate(err, "club with name %q already exists", club.Name)
	}
	return club, nil
}

func (s *ClubRepository) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).First(&club, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "club %s not found", id)
	}
	return &club, nil
}

func (s *ClubRepository) GetAll(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, error) {
	// clubs of soft-deleted leaders are hidden from listings
	query := s.db.WithContext(ctx).
		Model(&entity.Club{}).
		Joins("JOIN users ON users.id = clubs.leader_id AND users.deleted_at IS NULL")

	if filter.Name != nil {
		query = query.Where("clubs.name = ?", *filter.Name)
	}
	if filter.LeaderID != nil {
		query = query.Where("clubs.leader_id = ?", *filter.LeaderID)
	}

	var clubs []entity.Club
	err := query.Find(&clubs).Error
	if err != nil {
		return nil, translate(err, "list clubs")
	}
	return clubs, nil
}

func (s *ClubRepository) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(club).Error
	if err != nil {
		return nil, translate(err, "club with name %q already exists", club.Name)
	}
	return club, nil
}
