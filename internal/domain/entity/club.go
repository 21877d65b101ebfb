package entity

import (
	"time"

	"github.com/lib/pq"
)

type Club struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// Name is globally unique, matched case-sensitively.
	Name        string `gorm:"not null;unique"`
	Description string
	// LeaderID is the owning user; immutable after creation. The leader is
	// always an approved member via an ordinary membership row.
	LeaderID int64 `gorm:"not null;index"`
	// MaxPeople caps the approved-member count, minimum 2.
	MaxPeople int `gorm:"not null"`
	// Tags - free-form labels shown in club listings
	Tags pq.StringArray `gorm:"type:text[]"`
}
