package primary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

// UserService defines the interface for user-related use cases
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
}
