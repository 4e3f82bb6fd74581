package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) domain.UserRepo {
	return &userRepository{db: database}
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	return &user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("user with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	return &user, nil
}
