package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (s *CatalogRepository) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var category entity.Category
	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "category %d not found", id)
	}
	return &category, nil
}

func (s *CatalogRepository) GetCity(ctx context.Context, id int64) (*entity.City, error) {
	var city entity.City
	err := s.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "city %d not found", id)
	}
	return &city, nil
}
