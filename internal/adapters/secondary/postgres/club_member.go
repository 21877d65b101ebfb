package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

type ClubMemberRepository struct {
	db *gorm.DB
}

func NewClubMemberRepository(db *gorm.DB) *ClubMemberRepository {
	return &ClubMemberRepository{
		db: db,
	}
}

func (s *ClubMemberRepository) Get(ctx context.Context, clubID string, userID int64) (*entity.ClubMember, error) {
	var member entity.ClubMember
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		First(&member).Error
	if err != nil {
		return nil, translate(err, "user %d has no membership in club %s", userID, clubID)
	}
	return &member, nil
}

func (s *ClubMemberRepository) CountApproved(ctx context.Context, clubID string) (int64, error) {
	count, err := countApproved(s.db.WithContext(ctx), clubID)
	return count, translate(err, "count members of club %s", clubID)
}

func (s *ClubMemberRepository) GetRoster(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	type rawMember struct {
		UserID int64  `gorm:"column:user_id"`
		Name   string `gorm:"column:name"`
		Status string `gorm:"column:status"`
	}

	var rawResult []rawMember
	err := s.db.WithContext(ctx).
		Table("club_members").
		Select("club_members.user_id, users.name, club_members.status").
		Joins("JOIN users ON users.id = club_members.user_id").
		Where("club_members.club_id = ? AND club_members.status = ? AND users.deleted_at IS NULL",
			clubID, valueobject.MemberStatusApproved).
		Order("club_members.created_at").
		Scan(&rawResult).Error
	if err != nil {
		return nil, translate(err, "load roster of club %s", clubID)
	}

	result := make([]dto.ClubMemberInfo, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.ClubMemberInfo{
			UserID: raw.UserID,
			Name:   raw.Name,
			Status: valueobject.MemberStatus(raw.Status),
		}
	}
	return result, nil
}

// JoinWithCapacityCheck locks the club row, re-reads the approved count and
// creates the PENDING row in the same transaction, so concurrent joins can
// never admit more approved members than the club holds.
func (s *ClubMemberRepository) JoinWithCapacityCheck(ctx context.Context, clubID string, userID int64, maxPeople int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockClub(tx, clubID); err != nil {
			return err
		}

		approved, err := countApproved(tx, clubID)
		if err != nil {
			return err
		}
		if approved >= int64(maxPeople) {
			return errorz.Conflict("club %s is already full", clubID)
		}

		return tx.Create(&entity.ClubMember{
			ClubID: clubID,
			UserID: userID,
			Status: valueobject.MemberStatusPending,
		}).Error
	})
	return translate(err, "user %d already has a membership row in club %s", userID, clubID)
}

// ApproveWithCapacityCheck flips PENDING to APPROVED under the same club row
// lock, so approvals at the capacity boundary stop exactly at maxPeople.
func (s *ClubMemberRepository) ApproveWithCapacityCheck(ctx context.Context, clubID string, userID int64, maxPeople int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockClub(tx, clubID); err != nil {
			return err
		}

		approved, err := countApproved(tx, clubID)
		if err != nil {
			return err
		}
		if approved >= int64(maxPeople) {
			return errorz.Conflict("club %s is already full", clubID)
		}

		return tx.Model(&entity.ClubMember{}).
			Where("club_id = ? AND user_id = ?", clubID, userID).
			Update("status", valueobject.MemberStatusApproved).Error
	})
	return translate(err, "approve user %d in club %s", userID, clubID)
}

func (s *ClubMemberRepository) UpdateStatus(ctx context.Context, clubID string, userID int64, status valueobject.MemberStatus) error {
	err := s.db.WithContext(ctx).
		Model(&entity.ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Update("status", status).Error
	return translate(err, "update membership of user %d in club %s", userID, clubID)
}

func lockClub(tx *gorm.DB, clubID string) error {
	var club entity.Club
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&club, "id = ?", clubID).Error
}

func countApproved(tx *gorm.DB, clubID string) (int64, error) {
	var count int64
	err := tx.Model(&entity.ClubMember{}).
		Joins("JOIN users ON users.id = club_members.user_id AND users.deleted_at IS NULL").
		Where("club_members.club_id = ? AND club_members.status = ?", clubID, valueobject.MemberStatusApproved).
		Count(&count).Error
	return count, err
}
