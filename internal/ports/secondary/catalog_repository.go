package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// CatalogRepository resolves the category and city reference tables.
type CatalogRepository interface {
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	GetCity(ctx context.Context, id int64) (*entity.City, error)
}
