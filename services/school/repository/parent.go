package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(database *gorm.DB) domain.ParentRepo {
	return &parentRepository{db: database}
}

func (pr *parentRepository) Create(ctx context.Context, user *domain.User, parent *domain.Parent) error {
	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert user: %w", err)
	}

	parent.UserID = user.UserID
	if err := tx.Create(parent).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert parent: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (pr *parentRepository) GetAll(ctx context.Context) (*[]domain.Parent, error) {
	var parents []domain.Parent
	if err := pr.db.WithContext(ctx).Order("parent_id").Find(&parents).Error; err != nil {
		return nil, fmt.Errorf("could not fetch parents: %w", err)
	}
	return &parents, nil
}

func (pr *parentRepository) GetByID(ctx context.Context, id int) (*domain.Parent, error) {
	var parent domain.Parent
	err := pr.db.WithContext(ctx).Where("parent_id = ?", id).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("parent with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch parent: %w", err)
	}
	return &parent, nil
}

func (pr *parentRepository) GetByUserID(ctx context.Context, userID int) (*domain.Parent, error) {
	var parent domain.Parent
	err := pr.db.WithContext(ctx).Where("user_id = ?", userID).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("parent profile not found")
		}
		return nil, fmt.Errorf("could not fetch parent: %w", err)
	}
	return &parent, nil
}

func (pr *parentRepository) GetByIDs(ctx context.Context, ids []int) (*[]domain.Parent, error) {
	var parents []domain.Parent
	if len(ids) == 0 {
		return &parents, nil
	}
	if err := pr.db.WithContext(ctx).Where("parent_id IN ?", ids).Find(&parents).Error; err != nil {
		return nil, fmt.Errorf("could not fetch parents: %w", err)
	}
	return &parents, nil
}

func (pr *parentRepository) Update(ctx context.Context, id int, upd *domain.ParentUpdate) error {
	values := map[string]interface{}{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Phone != nil {
		values["phone"] = *upd.Phone
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}
	if upd.Occupation != nil {
		values["occupation"] = *upd.Occupation
	}
	if upd.Address != nil {
		values["address"] = *upd.Address
	}
	if upd.Relation != nil {
		values["relation"] = *upd.Relation
	}
	if len(values) == 0 {
		return nil
	}

	res := pr.db.WithContext(ctx).Model(&domain.Parent{}).Where("parent_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update parent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("parent with id %d not found", id)
	}
	return nil
}

func (pr *parentRepository) Delete(ctx context.Context, id int) error {
	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	var parent domain.Parent
	if err := tx.Where("parent_id = ?", id).First(&parent).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundf("parent with id %d not found", id)
		}
		return fmt.Errorf("could not fetch parent: %w", err)
	}

	// Detach children before removing the parent.
	if err := tx.Model(&domain.Student{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not detach children: %w", err)
	}

	if err := tx.Delete(&domain.Parent{}, "parent_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete parent: %w", err)
	}
	if err := tx.Delete(&domain.User{}, "user_id = ?", parent.UserID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (pr *parentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := pr.db.WithContext(ctx).Model(&domain.Parent{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count parents: %w", err)
	}
	return n, nil
}
