package postgres

import (
	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// Migrations lists every entity handed to gorm's AutoMigrate at startup.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.ClubMember{},
	&entity.Category{},
	&entity.City{},
	&entity.Event{},
	&entity.EventParticipant{},
}

// SeedCatalog fills the category and city reference tables on first boot.
// FirstOrCreate keeps repeated startups idempotent.
func SeedCatalog(db *gorm.DB) error {
	categories := []entity.Category{
		{ID: 1, Name: "Sports"},
		{ID: 2, Name: "Study"},
		{ID: 3, Name: "Music"},
		{ID: 4, Name: "Games"},
		{ID: 5, Name: "Food"},
	}
	for _, category := range categories {
		if err := db.Where("id = ?", category.ID).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	cities := []entity.City{
		{ID: 1, Name: "Seoul"},
		{ID: 2, Name: "Busan"},
		{ID: 3, Name: "Incheon"},
		{ID: 4, Name: "Daejeon"},
		{ID: 5, Name: "Daegu"},
	}
	for _, city := range cities {
		if err := db.Where("id = ?", city.ID).FirstOrCreate(&city).Error; err != nil {
			return err
		}
	}

	return nil
}
