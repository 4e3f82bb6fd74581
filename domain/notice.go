package domain

import (
	"context"
	"time"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Notice struct {
	NoticeID      int        `gorm:"primaryKey;autoIncrement" json:"notice_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title" valid:"required~Title is required"`
	Content       string     `gorm:"type:text;not null" json:"content" valid:"required~Content is required"`
	TargetRole    *string    `gorm:"type:role_enum" json:"target_role"`
	Priority      string     `gorm:"type:varchar(20);not null;default:'normal'" json:"priority" valid:"in(low|normal|high|urgent)~Invalid priority"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	AttachmentURL string     `gorm:"type:varchar(500)" json:"attachment_url"`
	CreatedBy     *int       `json:"created_by"`
	ExpiresAt     *time.Time `json:"expires_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NoticeUpdate struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	TargetRole    *string    `json:"target_role"`
	Priority      *string    `json:"priority"`
	IsActive      *bool      `json:"is_active"`
	AttachmentURL *string    `json:"attachment_url"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

type NoticeRepo interface {
	Create(ctx context.Context, n *Notice) error
	GetAll(ctx context.Context) (*[]Notice, error)
	GetByID(ctx context.Context, id int) (*Notice, error)
	Update(ctx context.Context, id int, upd *NoticeUpdate) error
	Delete(ctx context.Context, id int) error
	GetActiveForRole(ctx context.Context, role string, limit int) (*[]Notice, error)
}
