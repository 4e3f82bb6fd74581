package domain

import (
	"context"
	"math"
	"time"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

type Attendance struct {
	AttendanceID int       `gorm:"primaryKey;autoIncrement" json:"attendance_id"`
	StudentID    int       `gorm:"not null;uniqueIndex:uniq_attendance_day" json:"student_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uniq_attendance_day" json:"date"`
	Status       string    `gorm:"type:attendance_status_enum;not null" json:"status" valid:"required~Status is required,in(present|absent|late|excused)~Invalid status"`
	MarkedBy     *int      `json:"marked_by"`
	Remarks      string    `gorm:"type:varchar(255)" json:"remarks"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AttendanceMark struct {
	StudentID int    `json:"student_id" valid:"required~Student is required"`
	Status    string `json:"status" valid:"required~Status is required,in(present|absent|late|excused)~Invalid status"`
	Remarks   string `json:"remarks"`
}

type AttendanceSummary struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Excused    int     `json:"excused"`
	Percentage float64 `json:"percentage"`
}

// StudentDayStatus is one row of the class-attendance-for-a-date view.
// Unmarked students are surfaced as absent for display only; no row is
// persisted for them.
type StudentDayStatus struct {
	StudentID int    `json:"student_id"`
	Name      string `json:"name"`
	RollNo    *int   `json:"roll_no"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
	Marked    bool   `json:"marked"`
}

// SummarizeAttendance counts explicitly marked days only. The percentage is
// present/total*100 rounded to 2 decimals, 0 when nothing has been marked.
func SummarizeAttendance(records []Attendance) AttendanceSummary {
	s := AttendanceSummary{TotalDays: len(records)}
	for _, r := range records {
		switch r.Status {
		case AttendancePresent:
			s.Present++
		case AttendanceAbsent:
			s.Absent++
		case AttendanceLate:
			s.Late++
		case AttendanceExcused:
			s.Excused++
		}
	}
	if s.TotalDays > 0 {
		s.Percentage = Round2(float64(s.Present) / float64(s.TotalDays) * 100)
	}
	return s
}

// Round2 rounds to 2 decimal places, the precision every derived percentage
// in the system reports.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type AttendanceRepo interface {
	BulkMark(ctx context.Context, date time.Time, marks []AttendanceMark, markedBy *int) error
	GetByStudent(ctx context.Context, studentID int, from, to *time.Time) (*[]Attendance, error)
	GetByStudentsOnDate(ctx context.Context, studentIDs []int, date time.Time) (*[]Attendance, error)
	CountMarkedOn(ctx context.Context, date time.Time) (int64, error)
}
