package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (s *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Create(user).Error
	return user, translate(err, "user with email %s already exists", user.Email)
}

func (s *UserRepository) Get(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "user %d not found", id)
	}
	return &user, nil
}

func (s *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, translate(err, "user with email %s not found", email)
	}
	return &user, nil
}
