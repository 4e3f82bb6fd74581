package domain

import (
	"context"
	"sort"
	"time"
)

const (
	ParticipantParent  = "parent"
	ParticipantTeacher = "teacher"
)

// Message is one row of a flat append-only table. A thread is derived from
// the unordered (parent, teacher) pair; there is no stored thread entity.
type Message struct {
	MessageID    int        `gorm:"primaryKey;autoIncrement" json:"message_id"`
	SenderID     int        `gorm:"not null;index" json:"sender_id"`
	SenderType   string     `gorm:"type:participant_enum;not null" json:"sender_type"`
	ReceiverID   int        `gorm:"not null;index" json:"receiver_id"`
	ReceiverType string     `gorm:"type:participant_enum;not null" json:"receiver_type"`
	Content      string     `gorm:"type:text;not null" json:"content" valid:"required~Content is required"`
	StudentID    *int       `json:"student_id"`
	IsRead       bool       `gorm:"not null;default:false" json:"is_read"`
	ReadAt       *time.Time `json:"read_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

type SendMessageRequest struct {
	CounterpartID int    `json:"counterpart_id" valid:"required~Counterpart is required"`
	Content       string `json:"content" valid:"required~Content is required"`
	StudentID     *int   `json:"student_id"`
}

// Conversation is the derived per-counterpart thread summary.
type Conversation struct {
	CounterpartID   int        `json:"counterpart_id"`
	Name            string     `json:"name"`
	Context         string     `json:"context"`
	LastMessage     string     `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
	UnreadCount     int        `json:"unread_count"`
}

// PreviewContent truncates a message body for conversation listings.
func PreviewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= 50 {
		return content
	}
	return string(runes[:50]) + "..."
}

// SortConversations orders by most-recent-message time descending;
// counterparts never messaged sort last.
func SortConversations(list []Conversation) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].LastMessageTime, list[j].LastMessageTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

type MessageRepo interface {
	Insert(ctx context.Context, m *Message) error
	// GetThread returns every message between the pair, oldest first.
	GetThread(ctx context.Context, parentID, teacherID int) (*[]Message, error)
	GetLastInThread(ctx context.Context, parentID, teacherID int) (*Message, error)
	CountUnread(ctx context.Context, senderID int, senderType string, receiverID int, receiverType string) (int, error)
	MarkThreadRead(ctx context.Context, senderID int, senderType string, receiverID int, receiverType string, at time.Time) error
}
