package repository

import (
	"context"

	"lms/models"

	"gorm.io/gorm"
)

type UserRepo interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Get(ctx context.Context, id uint) (*models.User, error) {
	var result models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
