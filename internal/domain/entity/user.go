package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// DeletedAt marks soft deletion; soft-deleted users are excluded from
	// membership and participant counts everywhere.
	DeletedAt    gorm.DeletedAt
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;unique"`
	PasswordHash string `gorm:"not null"`
}
