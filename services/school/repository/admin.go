package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(database *gorm.DB) domain.AdminRepo {
	return &adminRepository{db: database}
}

func (ar *adminRepository) Create(ctx context.Context, user *domain.User, admin *domain.Admin) error {
	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert user: %w", err)
	}

	admin.UserID = user.UserID
	if err := tx.Create(admin).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert admin: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (ar *adminRepository) GetAll(ctx context.Context) (*[]domain.Admin, error) {
	var admins []domain.Admin
	if err := ar.db.WithContext(ctx).Order("admin_id").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("could not fetch admins: %w", err)
	}
	return &admins, nil
}

func (ar *adminRepository) GetByUserID(ctx context.Context, userID int) (*domain.Admin, error) {
	var admin domain.Admin
	err := ar.db.WithContext(ctx).Where("user_id = ?", userID).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("admin profile not found")
		}
		return nil, fmt.Errorf("could not fetch admin: %w", err)
	}
	return &admin, nil
}

func (ar *adminRepository) Delete(ctx context.Context, id int) error {
	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	var admin domain.Admin
	if err := tx.Where("admin_id = ?", id).First(&admin).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundf("admin with id %d not found", id)
		}
		return fmt.Errorf("could not fetch admin: %w", err)
	}

	if err := tx.Delete(&domain.Admin{}, "admin_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete admin: %w", err)
	}
	if err := tx.Delete(&domain.User{}, "user_id = ?", admin.UserID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}
