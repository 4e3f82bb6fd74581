package domain

import (
	"context"
	"time"
)

const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

type Class struct {
	ClassID        int       `gorm:"primaryKey;autoIncrement" json:"class_id"`
	Name           string    `gorm:"type:varchar(50);not null;uniqueIndex:uniq_class_identity" json:"name" valid:"required~Name is required"`
	Section        string    `gorm:"type:varchar(10);uniqueIndex:uniq_class_identity" json:"section"`
	AcademicYear   string    `gorm:"type:varchar(20);not null;uniqueIndex:uniq_class_identity" json:"academic_year" valid:"required~Academic year is required"`
	ClassTeacherID *int      `json:"class_teacher_id"`
	RoomNumber     string    `gorm:"type:varchar(20)" json:"room_number"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Subject struct {
	SubjectID   int       `gorm:"primaryKey;autoIncrement" json:"subject_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	Code        string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"code" valid:"required~Code is required"`
	ClassID     *int      `gorm:"index" json:"class_id"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Teachers    []Teacher `gorm:"many2many:teacher_subjects" json:"teachers,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Timetable struct {
	TimetableID int       `gorm:"primaryKey;autoIncrement" json:"timetable_id"`
	ClassID     int       `gorm:"not null;uniqueIndex:uniq_timetable_slot" json:"class_id" valid:"required~Class is required"`
	Day         string    `gorm:"type:day_enum;not null;uniqueIndex:uniq_timetable_slot" json:"day" valid:"required~Day is required,in(monday|tuesday|wednesday|thursday|friday|saturday)~Invalid day"`
	Period      int       `gorm:"not null;uniqueIndex:uniq_timetable_slot" json:"period" valid:"required~Period is required"`
	StartTime   string    `gorm:"type:varchar(10)" json:"start_time"`
	EndTime     string    `gorm:"type:varchar(10)" json:"end_time"`
	SubjectID   *int      `json:"subject_id"`
	TeacherID   *int      `gorm:"index" json:"teacher_id"`
	Room        string    `gorm:"type:varchar(50)" json:"room"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ClassUpdate struct {
	Name           *string `json:"name"`
	Section        *string `json:"section"`
	AcademicYear   *string `json:"academic_year"`
	ClassTeacherID *int    `json:"class_teacher_id"`
	RoomNumber     *string `json:"room_number"`
}

// TimetablePeriod is one slot in the by-day view shared by every role.
type TimetablePeriod struct {
	Period      int    `json:"period"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
	Room        string `json:"room"`
}

type AcademicRepo interface {
	CreateClass(ctx context.Context, class *Class) error
	GetAllClasses(ctx context.Context) (*[]Class, error)
	GetClassByID(ctx context.Context, id int) (*Class, error)
	GetClassesByIDs(ctx context.Context, ids []int) (*[]Class, error)
	FindClassByIdentity(ctx context.Context, name, section, academicYear string) (*Class, error)
	UpdateClass(ctx context.Context, id int, upd *ClassUpdate) error
	DeleteClass(ctx context.Context, id int) error
	CountClasses(ctx context.Context) (int64, error)

	CreateSubject(ctx context.Context, subject *Subject) error
	GetAllSubjects(ctx context.Context) (*[]Subject, error)
	GetSubjectByID(ctx context.Context, id int) (*Subject, error)
	GetSubjectsByIDs(ctx context.Context, ids []int) (*[]Subject, error)
	GetSubjectsByClasses(ctx context.Context, classIDs []int) (*[]Subject, error)

	CreateTimetableEntry(ctx context.Context, entry *Timetable) error
	UpdateTimetableEntry(ctx context.Context, id int, entry *Timetable) error
	DeleteTimetableEntry(ctx context.Context, id int) error
	GetTimetableByClass(ctx context.Context, classID int) (*[]Timetable, error)
	GetTimetableByTeacher(ctx context.Context, teacherID int) (*[]Timetable, error)
	SlotTaken(ctx context.Context, classID int, day string, period int, excludeID int) (bool, error)
}
