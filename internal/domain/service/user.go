package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
)

type UserService struct {
	repo secondary.UserRepository
}

func NewUserService(storage secondary.UserRepository) *UserService {
	return &UserService{
		repo: storage,
	}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" {
		return nil, errorz.InvalidArgument("name and email are required")
	}
	if len(password) < 8 {
		return nil, errorz.InvalidArgument("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// duplicate emails surface as Conflict from the unique constraint
	return s.repo.Create(ctx, &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errorz.IsKind(err, errorz.KindNotFound) {
			return nil, errorz.Forbidden("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errorz.Forbidden("invalid credentials")
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.repo.Get(ctx, id)
}
