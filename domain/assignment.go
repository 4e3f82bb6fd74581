package domain

import (
	"context"
	"time"
)

const (
	SubmissionPending   = "pending"
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
	SubmissionOverdue   = "overdue"
)

type Assignment struct {
	AssignmentID  int       `gorm:"primaryKey;autoIncrement" json:"assignment_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" valid:"required~Title is required"`
	Description   string    `gorm:"type:text" json:"description"`
	ClassID       int       `gorm:"not null;index" json:"class_id" valid:"required~Class is required"`
	SubjectID     int       `gorm:"not null" json:"subject_id" valid:"required~Subject is required"`
	TeacherID     int       `gorm:"not null;index" json:"teacher_id"`
	DueDate       time.Time `gorm:"type:date;not null" json:"due_date"`
	AttachmentURL string    `gorm:"type:varchar(500)" json:"attachment_url"`
	MaxMarks      *int      `json:"max_marks"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AssignmentSubmission struct {
	SubmissionID  int        `gorm:"primaryKey;autoIncrement" json:"submission_id"`
	AssignmentID  int        `gorm:"not null;uniqueIndex:uniq_submission" json:"assignment_id"`
	StudentID     int        `gorm:"not null;uniqueIndex:uniq_submission" json:"student_id"`
	Content       string     `gorm:"type:text" json:"content"`
	FileURL       string     `gorm:"type:varchar(500)" json:"file_url"`
	SubmittedAt   time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	MarksObtained *float64   `gorm:"type:numeric(5,2)" json:"marks_obtained"`
	Feedback      string     `gorm:"type:text" json:"feedback"`
	GradedAt      *time.Time `json:"graded_at"`
	GradedBy      *int       `json:"graded_by"`
}

// SubmissionStatus derives the per-student assignment state: graded is
// terminal, a submission without marks is submitted, no submission is
// pending until the due date passes and overdue after.
func SubmissionStatus(a Assignment, sub *AssignmentSubmission, today time.Time) string {
	if sub != nil {
		if sub.MarksObtained != nil {
			return SubmissionGraded
		}
		return SubmissionSubmitted
	}
	if a.DueDate.Before(truncateToDay(today)) {
		return SubmissionOverdue
	}
	return SubmissionPending
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type CreateAssignmentRequest struct {
	Title         string    `json:"title" valid:"required~Title is required"`
	Description   string    `json:"description"`
	ClassID       int       `json:"class_id" valid:"required~Class is required"`
	SubjectID     int       `json:"subject_id" valid:"required~Subject is required"`
	DueDate       time.Time `json:"due_date"`
	AttachmentURL string    `json:"attachment_url"`
	MaxMarks      *int      `json:"max_marks"`
}

type SubmitAssignmentRequest struct {
	Content string `json:"content"`
	FileURL string `json:"file_url"`
}

type GradeSubmissionRequest struct {
	MarksObtained float64 `json:"marks_obtained"`
	Feedback      string  `json:"feedback"`
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id int) (*Assignment, error)
	GetByTeacher(ctx context.Context, teacherID int) (*[]Assignment, error)
	GetByClass(ctx context.Context, classID int) (*[]Assignment, error)
	Delete(ctx context.Context, id int) error
	CountDueAfter(ctx context.Context, classID int, date time.Time) (int64, error)

	GetSubmission(ctx context.Context, assignmentID, studentID int) (*AssignmentSubmission, error)
	GetSubmissions(ctx context.Context, assignmentID int) (*[]AssignmentSubmission, error)
	CreateSubmission(ctx context.Context, sub *AssignmentSubmission) error
	SaveGrade(ctx context.Context, sub *AssignmentSubmission) error
	CountUngradedByTeacher(ctx context.Context, teacherID int) (int64, error)
}
