package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(database *gorm.DB) domain.NoticeRepo {
	return &noticeRepository{db: database}
}

func (nr *noticeRepository) Create(ctx context.Context, n *domain.Notice) error {
	if err := nr.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("could not insert notice: %w", err)
	}
	return nil
}

func (nr *noticeRepository) GetAll(ctx context.Context) (*[]domain.Notice, error) {
	var notices []domain.Notice
	if err := nr.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, fmt.Errorf("could not fetch notices: %w", err)
	}
	return &notices, nil
}

func (nr *noticeRepository) GetByID(ctx context.Context, id int) (*domain.Notice, error) {
	var notice domain.Notice
	err := nr.db.WithContext(ctx).Where("notice_id = ?", id).First(&notice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("notice with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch notice: %w", err)
	}
	return &notice, nil
}

func (nr *noticeRepository) Update(ctx context.Context, id int, upd *domain.NoticeUpdate) error {
	values := map[string]interface{}{}
	if upd.Title != nil {
		values["title"] = *upd.Title
	}
	if upd.Content != nil {
		values["content"] = *upd.Content
	}
	if upd.TargetRole != nil {
		values["target_role"] = *upd.TargetRole
	}
	if upd.Priority != nil {
		values["priority"] = *upd.Priority
	}
	if upd.IsActive != nil {
		values["is_active"] = *upd.IsActive
	}
	if upd.AttachmentURL != nil {
		values["attachment_url"] = *upd.AttachmentURL
	}
	if upd.ExpiresAt != nil {
		values["expires_at"] = *upd.ExpiresAt
	}
	if len(values) == 0 {
		return nil
	}

	res := nr.db.WithContext(ctx).Model(&domain.Notice{}).Where("notice_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update notice: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("notice with id %d not found", id)
	}
	return nil
}

func (nr *noticeRepository) Delete(ctx context.Context, id int) error {
	res := nr.db.WithContext(ctx).Delete(&domain.Notice{}, "notice_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("could not delete notice: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("notice with id %d not found", id)
	}
	return nil
}

func (nr *noticeRepository) GetActiveForRole(ctx context.Context, role string, limit int) (*[]domain.Notice, error) {
	var notices []domain.Notice
	q := nr.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("target_role IS NULL OR target_role = ?", role).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&notices).Error; err != nil {
		return nil, fmt.Errorf("could not fetch notices: %w", err)
	}
	return &notices, nil
}
