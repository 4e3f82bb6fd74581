package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolmgmt/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(database *gorm.DB) domain.ExamRepo {
	return &examRepository{db: database}
}

func (er *examRepository) CreateExam(ctx context.Context, exam *domain.Exam) error {
	if err := er.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("could not insert exam: %w", err)
	}
	return nil
}

func (er *examRepository) GetAllExams(ctx context.Context) (*[]domain.Exam, error) {
	var exams []domain.Exam
	if err := er.db.WithContext(ctx).Order("exam_id").Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exams: %w", err)
	}
	return &exams, nil
}

func (er *examRepository) GetExamByID(ctx context.Context, id int) (*domain.Exam, error) {
	var exam domain.Exam
	err := er.db.WithContext(ctx).Where("exam_id = ?", id).First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("exam with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch exam: %w", err)
	}
	return &exam, nil
}

func (er *examRepository) GetExamsByIDs(ctx context.Context, ids []int) (*[]domain.Exam, error) {
	var exams []domain.Exam
	if len(ids) == 0 {
		return &exams, nil
	}
	if err := er.db.WithContext(ctx).Where("exam_id IN ?", ids).Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exams: %w", err)
	}
	return &exams, nil
}

func (er *examRepository) UpdateExam(ctx context.Context, exam *domain.Exam) error {
	res := er.db.WithContext(ctx).Model(&domain.Exam{}).
		Where("exam_id = ?", exam.ExamID).
		Updates(map[string]interface{}{
			"name":          exam.Name,
			"academic_year": exam.AcademicYear,
			"start_date":    exam.StartDate,
			"end_date":      exam.EndDate,
			"description":   exam.Description,
		})
	if res.Error != nil {
		return fmt.Errorf("could not update exam: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("exam with id %d not found", exam.ExamID)
	}
	return nil
}

func (er *examRepository) DeleteExam(ctx context.Context, id int) error {
	tx := er.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Delete(&domain.ExamResult{}, "exam_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete exam results: %w", err)
	}
	if err := tx.Delete(&domain.ExamSchedule{}, "exam_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete exam schedules: %w", err)
	}

	res := tx.Delete(&domain.Exam{}, "exam_id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete exam: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return domain.NotFoundf("exam with id %d not found", id)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (er *examRepository) CreateSchedule(ctx context.Context, s *domain.ExamSchedule) error {
	if err := er.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("could not insert exam schedule: %w", err)
	}
	return nil
}

func (er *examRepository) DeleteSchedule(ctx context.Context, id int) error {
	res := er.db.WithContext(ctx).Delete(&domain.ExamSchedule{}, "schedule_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("could not delete exam schedule: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("exam schedule with id %d not found", id)
	}
	return nil
}

func (er *examRepository) GetSchedulesByExam(ctx context.Context, examID int) (*[]domain.ExamSchedule, error) {
	var schedules []domain.ExamSchedule
	if err := er.db.WithContext(ctx).Where("exam_id = ?", examID).Order("exam_date").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exam schedules: %w", err)
	}
	return &schedules, nil
}

func (er *examRepository) GetSchedulesByClass(ctx context.Context, classID int) (*[]domain.ExamSchedule, error) {
	var schedules []domain.ExamSchedule
	if err := er.db.WithContext(ctx).Where("class_id = ?", classID).Order("exam_date").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exam schedules: %w", err)
	}
	return &schedules, nil
}

func (er *examRepository) GetSchedule(ctx context.Context, examID, subjectID, classID int) (*domain.ExamSchedule, error) {
	var s domain.ExamSchedule
	err := er.db.WithContext(ctx).
		Where("exam_id = ? AND subject_id = ? AND class_id = ?", examID, subjectID, classID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("no schedule for exam %d, subject %d, class %d", examID, subjectID, classID)
		}
		return nil, fmt.Errorf("could not fetch exam schedule: %w", err)
	}
	return &s, nil
}

func (er *examRepository) CountUpcomingByClass(ctx context.Context, classID int, from time.Time) (int64, error) {
	var n int64
	err := er.db.WithContext(ctx).Model(&domain.ExamSchedule{}).
		Where("class_id = ? AND exam_date >= ?", classID, from).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("could not count exam schedules: %w", err)
	}
	return n, nil
}

func (er *examRepository) GetResultsByExam(ctx context.Context, examID int) (*[]domain.ExamResult, error) {
	var results []domain.ExamResult
	if err := er.db.WithContext(ctx).Where("exam_id = ?", examID).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exam results: %w", err)
	}
	return &results, nil
}

func (er *examRepository) GetResultsByStudent(ctx context.Context, studentID int) (*[]domain.ExamResult, error) {
	var results []domain.ExamResult
	if err := er.db.WithContext(ctx).Where("student_id = ?", studentID).Order("exam_id, subject_id").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("could not fetch exam results: %w", err)
	}
	return &results, nil
}

// UpsertResults writes a whole marks batch in one transaction. A second batch
// for the same (exam, student, subject) keys overwrites the first.
func (er *examRepository) UpsertResults(ctx context.Context, examID, subjectID int, enteredBy *int, entries []domain.MarksEntry) error {
	if len(entries) == 0 {
		return nil
	}

	results := make([]domain.ExamResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, domain.ExamResult{
			ExamID:        examID,
			StudentID:     e.StudentID,
			SubjectID:     subjectID,
			MarksObtained: e.MarksObtained,
			Grade:         e.Grade,
			Remarks:       e.Remarks,
			EnteredBy:     enteredBy,
		})
	}

	err := er.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exam_id"}, {Name: "student_id"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"marks_obtained", "grade", "remarks", "entered_by"}),
	}).Create(&results).Error
	if err != nil {
		return fmt.Errorf("could not save exam results: %w", err)
	}
	return nil
}
