package entity

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

type ClubMember struct {
	ClubID    string `gorm:"primaryKey;type:uuid"`
	UserID    int64  `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// Status gates capacity and roster listings; only APPROVED rows count.
	Status valueobject.MemberStatus `gorm:"not null"`
}
