package repository

import (
	"context"

	"gorm.io/gorm"

	"acmedash/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateBatch(ctx context.Context, users []model.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail looks a user up by exact email match, for authentication.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateBatch inserts fixture users in batches. Used by the seed command.
func (r *userRepository) CreateBatch(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(users, 100).Error
}
