package postgres

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/google/uuid"
)

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var u entity.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, u *entity.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error)
}
