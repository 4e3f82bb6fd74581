package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) domain.AssignmentRepo {
	return &assignmentRepository{db: database}
}

func (ar *assignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	if err := ar.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("could not insert assignment: %w", err)
	}
	return nil
}

func (ar *assignmentRepository) GetByID(ctx context.Context, id int) (*domain.Assignment, error) {
	var a domain.Assignment
	err := ar.db.WithContext(ctx).Where("assignment_id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("assignment with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch assignment: %w", err)
	}
	return &a, nil
}

func (ar *assignmentRepository) GetByTeacher(ctx context.Context, teacherID int) (*[]domain.Assignment, error) {
	var assignments []domain.Assignment
	if err := ar.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Order("due_date DESC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("could not fetch assignments: %w", err)
	}
	return &assignments, nil
}

func (ar *assignmentRepository) GetByClass(ctx context.Context, classID int) (*[]domain.Assignment, error) {
	var assignments []domain.Assignment
	if err := ar.db.WithContext(ctx).Where("class_id = ?", classID).Order("due_date DESC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("could not fetch assignments: %w", err)
	}
	return &assignments, nil
}

func (ar *assignmentRepository) Delete(ctx context.Context, id int) error {
	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Delete(&domain.AssignmentSubmission{}, "assignment_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete submissions: %w", err)
	}

	res := tx.Delete(&domain.Assignment{}, "assignment_id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return domain.NotFoundf("assignment with id %d not found", id)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (ar *assignmentRepository) CountDueAfter(ctx context.Context, classID int, date time.Time) (int64, error) {
	var n int64
	err := ar.db.WithContext(ctx).Model(&domain.Assignment{}).
		Where("class_id = ? AND due_date >= ?", classID, date).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("could not count assignments: %w", err)
	}
	return n, nil
}

func (ar *assignmentRepository) GetSubmission(ctx context.Context, assignmentID, studentID int) (*domain.AssignmentSubmission, error) {
	var sub domain.AssignmentSubmission
	err := ar.db.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("submission not found")
		}
		return nil, fmt.Errorf("could not fetch submission: %w", err)
	}
	return &sub, nil
}

func (ar *assignmentRepository) GetSubmissions(ctx context.Context, assignmentID int) (*[]domain.AssignmentSubmission, error) {
	var subs []domain.AssignmentSubmission
	if err := ar.db.WithContext(ctx).Where("assignment_id = ?", assignmentID).Order("submitted_at").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("could not fetch submissions: %w", err)
	}
	return &subs, nil
}

func (ar *assignmentRepository) CreateSubmission(ctx context.Context, sub *domain.AssignmentSubmission) error {
	if err := ar.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("could not insert submission: %w", err)
	}
	return nil
}

func (ar *assignmentRepository) SaveGrade(ctx context.Context, sub *domain.AssignmentSubmission) error {
	res := ar.db.WithContext(ctx).Model(&domain.AssignmentSubmission{}).
		Where("submission_id = ?", sub.SubmissionID).
		Updates(map[string]interface{}{
			"marks_obtained": sub.MarksObtained,
			"feedback":       sub.Feedback,
			"graded_at":      sub.GradedAt,
			"graded_by":      sub.GradedBy,
		})
	if res.Error != nil {
		return fmt.Errorf("could not save grade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("submission with id %d not found", sub.SubmissionID)
	}
	return nil
}

func (ar *assignmentRepository) CountUngradedByTeacher(ctx context.Context, teacherID int) (int64, error) {
	var n int64
	err := ar.db.WithContext(ctx).Model(&domain.AssignmentSubmission{}).
		Joins("JOIN assignments a ON a.assignment_id = assignment_submissions.assignment_id").
		Where("a.teacher_id = ? AND assignment_submissions.marks_obtained IS NULL", teacherID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("could not count ungraded submissions: %w", err)
	}
	return n, nil
}
