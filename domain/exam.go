package domain

import (
	"context"
	"time"
)

// defaultMaxMarks backs percentage math for results whose exam sitting has
// no schedule row.
const defaultMaxMarks = 100

type Exam struct {
	ExamID       int        `gorm:"primaryKey;autoIncrement" json:"exam_id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	AcademicYear string     `gorm:"type:varchar(20);not null" json:"academic_year" valid:"required~Academic year is required"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

type ExamSchedule struct {
	ScheduleID   int       `gorm:"primaryKey;autoIncrement" json:"schedule_id"`
	ExamID       int       `gorm:"not null;index" json:"exam_id" valid:"required~Exam is required"`
	ClassID      int       `gorm:"not null" json:"class_id" valid:"required~Class is required"`
	SubjectID    int       `gorm:"not null" json:"subject_id" valid:"required~Subject is required"`
	ExamDate     time.Time `gorm:"type:date;not null" json:"exam_date"`
	StartTime    string    `gorm:"type:varchar(10)" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(10)" json:"end_time"`
	MaxMarks     int       `gorm:"not null" json:"max_marks" valid:"required~Max marks is required"`
	PassingMarks *int      `json:"passing_marks"`
	Room         string    `gorm:"type:varchar(50)" json:"room"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ExamResult struct {
	ResultID      int       `gorm:"primaryKey;autoIncrement" json:"result_id"`
	ExamID        int       `gorm:"not null;uniqueIndex:uniq_exam_result" json:"exam_id"`
	StudentID     int       `gorm:"not null;uniqueIndex:uniq_exam_result" json:"student_id"`
	SubjectID     int       `gorm:"not null;uniqueIndex:uniq_exam_result" json:"subject_id"`
	MarksObtained float64   `gorm:"type:numeric(5,2)" json:"marks_obtained"`
	Grade         string    `gorm:"type:varchar(5)" json:"grade"`
	Remarks       string    `gorm:"type:varchar(255)" json:"remarks"`
	EnteredBy     *int      `json:"entered_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type MarksEntry struct {
	StudentID     int     `json:"student_id" valid:"required~Student is required"`
	MarksObtained float64 `json:"marks_obtained"`
	Grade         string  `json:"grade"`
	Remarks       string  `json:"remarks"`
}

type EnterMarksRequest struct {
	ExamID    int          `json:"exam_id" valid:"required~Exam is required"`
	SubjectID int          `json:"subject_id" valid:"required~Subject is required"`
	ClassID   int          `json:"class_id" valid:"required~Class is required"`
	Results   []MarksEntry `json:"results"`
}

type SubjectResult struct {
	SubjectName   string  `json:"subject_name"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      int     `json:"max_marks"`
	Grade         string  `json:"grade"`
	Remarks       string  `json:"remarks"`
}

type ExamReport struct {
	ExamID        int             `json:"exam_id"`
	ExamName      string          `json:"exam_name"`
	AcademicYear  string          `json:"academic_year"`
	Subjects      []SubjectResult `json:"subjects"`
	TotalMarks    int             `json:"total_marks"`
	ObtainedMarks float64         `json:"obtained_marks"`
	Percentage    float64         `json:"percentage"`
}

// AggregateExamResults groups one student's results by exam. The denominator
// for each subject comes from the schedule matched on (exam, class, subject),
// falling back to 100 when no sitting was scheduled. Percentage is 0 when the
// total is 0. Missing exam or subject rows degrade to "Unknown" labels.
func AggregateExamResults(results []ExamResult, schedules []ExamSchedule, exams map[int]Exam, subjects map[int]Subject, classID int) []ExamReport {
	type key struct{ exam, subject int }
	maxMarks := make(map[key]int, len(schedules))
	for _, s := range schedules {
		if s.ClassID == classID {
			maxMarks[key{s.ExamID, s.SubjectID}] = s.MaxMarks
		}
	}

	byExam := make(map[int]*ExamReport)
	var order []int
	for _, r := range results {
		rep, ok := byExam[r.ExamID]
		if !ok {
			rep = &ExamReport{ExamID: r.ExamID, ExamName: "Unknown"}
			if e, found := exams[r.ExamID]; found {
				rep.ExamName = e.Name
				rep.AcademicYear = e.AcademicYear
			}
			byExam[r.ExamID] = rep
			order = append(order, r.ExamID)
		}

		mm, ok := maxMarks[key{r.ExamID, r.SubjectID}]
		if !ok {
			mm = defaultMaxMarks
		}

		subjectName := "Unknown"
		if s, found := subjects[r.SubjectID]; found {
			subjectName = s.Name
		}

		rep.Subjects = append(rep.Subjects, SubjectResult{
			SubjectName:   subjectName,
			MarksObtained: r.MarksObtained,
			MaxMarks:      mm,
			Grade:         r.Grade,
			Remarks:       r.Remarks,
		})
		rep.TotalMarks += mm
		rep.ObtainedMarks += r.MarksObtained
	}

	reports := make([]ExamReport, 0, len(order))
	for _, id := range order {
		rep := byExam[id]
		if rep.TotalMarks > 0 {
			rep.Percentage = Round2(rep.ObtainedMarks / float64(rep.TotalMarks) * 100)
		}
		reports = append(reports, *rep)
	}
	return reports
}

type ExamRepo interface {
	CreateExam(ctx context.Context, exam *Exam) error
	GetAllExams(ctx context.Context) (*[]Exam, error)
	GetExamByID(ctx context.Context, id int) (*Exam, error)
	GetExamsByIDs(ctx context.Context, ids []int) (*[]Exam, error)
	UpdateExam(ctx context.Context, exam *Exam) error
	DeleteExam(ctx context.Context, id int) error

	CreateSchedule(ctx context.Context, s *ExamSchedule) error
	DeleteSchedule(ctx context.Context, id int) error
	GetSchedulesByExam(ctx context.Context, examID int) (*[]ExamSchedule, error)
	GetSchedulesByClass(ctx context.Context, classID int) (*[]ExamSchedule, error)
	GetSchedule(ctx context.Context, examID, subjectID, classID int) (*ExamSchedule, error)
	CountUpcomingByClass(ctx context.Context, classID int, from time.Time) (int64, error)

	GetResultsByExam(ctx context.Context, examID int) (*[]ExamResult, error)
	GetResultsByStudent(ctx context.Context, studentID int) (*[]ExamResult, error)
	UpsertResults(ctx context.Context, examID, subjectID int, enteredBy *int, entries []MarksEntry) error
}
