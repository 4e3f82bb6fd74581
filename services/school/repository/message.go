package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(database *gorm.DB) domain.MessageRepo {
	return &messageRepository{db: database}
}

func (mr *messageRepository) Insert(ctx context.Context, m *domain.Message) error {
	if err := mr.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	return nil
}

func (mr *messageRepository) GetThread(ctx context.Context, parentID, teacherID int) (*[]domain.Message, error) {
	var messages []domain.Message
	err := mr.db.WithContext(ctx).
		Where("(sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ?) OR (sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ?)",
			parentID, domain.ParticipantParent, teacherID, domain.ParticipantTeacher,
			teacherID, domain.ParticipantTeacher, parentID, domain.ParticipantParent).
		Order("created_at, message_id").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch thread: %w", err)
	}
	return &messages, nil
}

func (mr *messageRepository) GetLastInThread(ctx context.Context, parentID, teacherID int) (*domain.Message, error) {
	var m domain.Message
	err := mr.db.WithContext(ctx).
		Where("(sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ?) OR (sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ?)",
			parentID, domain.ParticipantParent, teacherID, domain.ParticipantTeacher,
			teacherID, domain.ParticipantTeacher, parentID, domain.ParticipantParent).
		Order("created_at DESC, message_id DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not fetch last message: %w", err)
	}
	return &m, nil
}

func (mr *messageRepository) CountUnread(ctx context.Context, senderID int, senderType string, receiverID int, receiverType string) (int, error) {
	var n int64
	err := mr.db.WithContext(ctx).Model(&domain.Message{}).
		Where("sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ? AND is_read = ?",
			senderID, senderType, receiverID, receiverType, false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("could not count unread messages: %w", err)
	}
	return int(n), nil
}

func (mr *messageRepository) MarkThreadRead(ctx context.Context, senderID int, senderType string, receiverID int, receiverType string, at time.Time) error {
	err := mr.db.WithContext(ctx).Model(&domain.Message{}).
		Where("sender_id = ? AND sender_type = ? AND receiver_id = ? AND receiver_type = ? AND is_read = ?",
			senderID, senderType, receiverID, receiverType, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at}).Error
	if err != nil {
		return fmt.Errorf("could not mark thread read: %w", err)
	}
	return nil
}
