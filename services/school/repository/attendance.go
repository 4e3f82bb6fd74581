package repository

import (
	"context"
	"fmt"
	"time"

	"schoolmgmt/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(database *gorm.DB) domain.AttendanceRepo {
	return &attendanceRepository{db: database}
}

// BulkMark upserts one row per student for the given date. A re-mark of the
// same student and date overwrites the earlier row.
func (ar *attendanceRepository) BulkMark(ctx context.Context, date time.Time, marks []domain.AttendanceMark, markedBy *int) error {
	if len(marks) == 0 {
		return nil
	}

	records := make([]domain.Attendance, 0, len(marks))
	for _, m := range marks {
		records = append(records, domain.Attendance{
			StudentID: m.StudentID,
			Date:      date,
			Status:    m.Status,
			Remarks:   m.Remarks,
			MarkedBy:  markedBy,
		})
	}

	err := ar.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "marked_by"}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("could not mark attendance: %w", err)
	}
	return nil
}

func (ar *attendanceRepository) GetByStudent(ctx context.Context, studentID int, from *time.Time, to *time.Time) (*[]domain.Attendance, error) {
	var records []domain.Attendance
	q := ar.db.WithContext(ctx).Where("student_id = ?", studentID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	if err := q.Order("date").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("could not fetch attendance: %w", err)
	}
	return &records, nil
}

func (ar *attendanceRepository) GetByStudentsOnDate(ctx context.Context, studentIDs []int, date time.Time) (*[]domain.Attendance, error) {
	var records []domain.Attendance
	if len(studentIDs) == 0 {
		return &records, nil
	}
	err := ar.db.WithContext(ctx).
		Where("student_id IN ? AND date = ?", studentIDs, date).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch attendance: %w", err)
	}
	return &records, nil
}

func (ar *attendanceRepository) CountMarkedOn(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	if err := ar.db.WithContext(ctx).Model(&domain.Attendance{}).Where("date = ?", date).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count attendance: %w", err)
	}
	return n, nil
}
