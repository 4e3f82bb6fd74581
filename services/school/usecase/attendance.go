package usecase

import (
	"context"
	"time"

	"schoolmgmt/domain"
)

type AttendanceUsecase struct {
	attendance domain.AttendanceRepo
	students   domain.StudentRepo
	academic   domain.AcademicRepo
}

func NewAttendanceUsecase(attendance domain.AttendanceRepo, students domain.StudentRepo, academic domain.AcademicRepo) *AttendanceUsecase {
	return &AttendanceUsecase{attendance: attendance, students: students, academic: academic}
}

// BulkMark records attendance for a class on a date. Re-marking the same
// student and date overwrites the previous row.
func (au *AttendanceUsecase) BulkMark(ctx context.Context, classID int, date time.Time, marks []domain.AttendanceMark, markedBy *int) error {
	if len(marks) == 0 {
		return domain.Validationf("no attendance records provided")
	}
	for _, m := range marks {
		if err := validate(&m); err != nil {
			return err
		}
	}

	roster, err := au.students.GetByClass(ctx, classID)
	if err != nil {
		return err
	}
	inClass := make(map[int]bool, len(*roster))
	for _, s := range *roster {
		inClass[s.StudentID] = true
	}
	for _, m := range marks {
		if !inClass[m.StudentID] {
			return domain.Validationf("student %d is not in class %d", m.StudentID, classID)
		}
	}

	return au.attendance.BulkMark(ctx, date, marks, markedBy)
}

// ClassOnDate lists every student of the class with their status for the
// date. Students without a row come back as absent with marked=false; nothing
// is written for them.
func (au *AttendanceUsecase) ClassOnDate(ctx context.Context, classID int, date time.Time) ([]domain.StudentDayStatus, error) {
	roster, err := au.students.GetByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(*roster))
	for _, s := range *roster {
		ids = append(ids, s.StudentID)
	}
	records, err := au.attendance.GetByStudentsOnDate(ctx, ids, date)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[int]domain.Attendance, len(*records))
	for _, r := range *records {
		byStudent[r.StudentID] = r
	}

	out := make([]domain.StudentDayStatus, 0, len(*roster))
	for _, s := range *roster {
		row := domain.StudentDayStatus{
			StudentID: s.StudentID,
			Name:      s.Name,
			RollNo:    s.RollNo,
			Status:    domain.AttendanceAbsent,
		}
		if r, ok := byStudent[s.StudentID]; ok {
			row.Status = r.Status
			row.Remarks = r.Remarks
			row.Marked = true
		}
		out = append(out, row)
	}
	return out, nil
}

// StudentSummary returns the marked records plus derived counts for an
// optional date range.
func (au *AttendanceUsecase) StudentSummary(ctx context.Context, studentID int, from, to *time.Time) (*domain.AttendanceSummary, *[]domain.Attendance, error) {
	if _, err := au.students.GetByID(ctx, studentID); err != nil {
		return nil, nil, err
	}
	records, err := au.attendance.GetByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, nil, err
	}
	summary := domain.SummarizeAttendance(*records)
	return &summary, records, nil
}
