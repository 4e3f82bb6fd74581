package domain

import (
	"context"
	"time"
)

type Teacher struct {
	TeacherID       int       `gorm:"primaryKey;autoIncrement" json:"teacher_id"`
	UserID          int       `gorm:"not null;unique" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	EmployeeID      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"employee_id" valid:"required~Employee ID is required"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone"`
	Qualification   string    `gorm:"type:varchar(255)" json:"qualification"`
	ExperienceYears int       `json:"experience_years"`
	JoinDate        *time.Time `gorm:"type:date" json:"join_date"`
	Address         string    `gorm:"type:varchar(500)" json:"address"`
	ProfileImage    string    `gorm:"type:varchar(500)" json:"profile_image"`
	Subjects        []Subject `gorm:"many2many:teacher_subjects" json:"subjects,omitempty"`
	Classes         []Class   `gorm:"many2many:teacher_classes" json:"classes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateTeacherRequest struct {
	Email           string     `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password        string     `json:"password" valid:"required~Password is required"`
	EmployeeID      string     `json:"employee_id" valid:"required~Employee ID is required"`
	Name            string     `json:"name" valid:"required~Name is required"`
	Phone           string     `json:"phone"`
	Qualification   string     `json:"qualification"`
	ExperienceYears int        `json:"experience_years"`
	JoinDate        *time.Time `json:"join_date"`
	Address         string     `json:"address"`
	SubjectIDs      []int      `json:"subject_ids"`
	ClassIDs        []int      `json:"class_ids"`
}

type TeacherUpdate struct {
	Name            *string    `json:"name"`
	Phone           *string    `json:"phone"`
	Qualification   *string    `json:"qualification"`
	ExperienceYears *int       `json:"experience_years"`
	JoinDate        *time.Time `json:"join_date"`
	Address         *string    `json:"address"`
	ProfileImage    *string    `json:"profile_image"`
}

type TeacherRepo interface {
	Create(ctx context.Context, user *User, teacher *Teacher) error
	GetAll(ctx context.Context) (*[]Teacher, error)
	GetByID(ctx context.Context, id int) (*Teacher, error)
	GetByUserID(ctx context.Context, userID int) (*Teacher, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Teacher, error)
	GetByIDs(ctx context.Context, ids []int) (*[]Teacher, error)
	Update(ctx context.Context, id int, upd *TeacherUpdate) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)

	AssignClasses(ctx context.Context, teacherID int, classIDs []int) error
	AssignSubjects(ctx context.Context, teacherID int, subjectIDs []int) error
	GetClasses(ctx context.Context, teacherID int) (*[]Class, error)
	GetSubjects(ctx context.Context, teacherID int) (*[]Subject, error)
	GetBySubjects(ctx context.Context, subjectIDs []int) (*[]Teacher, error)
}
