package domain

import (
	"context"
	"time"
)

const (
	AdmissionPending     = "pending"
	AdmissionUnderReview = "under_review"
	AdmissionApproved    = "approved"
	AdmissionRejected    = "rejected"
	AdmissionWaitlisted  = "waitlisted"
)

// Admission is a standalone application lead. It is never linked to a
// Student or Parent automatically; conversion is a manual admin action.
type Admission struct {
	AdmissionID    int       `gorm:"primaryKey;autoIncrement" json:"admission_id"`
	StudentName    string    `gorm:"type:varchar(255);not null" json:"student_name" valid:"required~Student name is required"`
	DOB            time.Time `gorm:"type:date;not null" json:"dob"`
	Gender         string    `gorm:"type:varchar(10)" json:"gender"`
	ParentName     string    `gorm:"type:varchar(255);not null" json:"parent_name" valid:"required~Parent name is required"`
	ParentPhone    string    `gorm:"type:varchar(20);not null" json:"parent_phone" valid:"required~Parent phone is required"`
	ParentEmail    *string   `gorm:"type:varchar(255)" json:"parent_email" valid:"email~Invalid email format,optional"`
	Address        string    `gorm:"type:varchar(500)" json:"address"`
	ClassApplied   string    `gorm:"type:varchar(50);not null" json:"class_applied" valid:"required~Class applied is required"`
	PreviousSchool string    `gorm:"type:varchar(255)" json:"previous_school"`
	PreviousClass  string    `gorm:"type:varchar(50)" json:"previous_class"`
	Status         string    `gorm:"type:admission_status_enum;not null;default:'pending'" json:"status"`
	Remarks        string    `gorm:"type:text" json:"remarks"`
	Documents      string    `gorm:"type:text" json:"documents"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AdmissionStatusUpdate struct {
	Status  string `json:"status" valid:"required~Status is required,in(pending|under_review|approved|rejected|waitlisted)~Invalid status"`
	Remarks string `json:"remarks"`
}

type AdmissionRepo interface {
	Create(ctx context.Context, a *Admission) error
	GetAll(ctx context.Context, status string) (*[]Admission, error)
	GetByID(ctx context.Context, id int) (*Admission, error)
	UpdateStatus(ctx context.Context, id int, upd *AdmissionStatusUpdate) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}
