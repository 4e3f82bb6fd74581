package domain

import (
	"context"
	"time"
)

type Student struct {
	StudentID    int        `gorm:"primaryKey;autoIncrement" json:"student_id"`
	UserID       int        `gorm:"not null;unique" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AdmissionNo  string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"admission_no" valid:"required~Admission number is required"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	ClassID      *int       `gorm:"index" json:"class_id"`
	Section      string     `gorm:"type:varchar(10)" json:"section"`
	RollNo       *int       `json:"roll_no"`
	DOB          *time.Time `gorm:"type:date" json:"dob"`
	Gender       string     `gorm:"type:varchar(10)" json:"gender"`
	Address      string     `gorm:"type:varchar(500)" json:"address"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`
	ParentID     *int       `gorm:"index" json:"parent_id"`
	BloodGroup   string     `gorm:"type:varchar(10)" json:"blood_group"`
	ProfileImage string     `gorm:"type:varchar(500)" json:"profile_image"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateStudentRequest struct {
	Email       string     `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password    string     `json:"password" valid:"required~Password is required"`
	AdmissionNo string     `json:"admission_no" valid:"required~Admission number is required"`
	Name        string     `json:"name" valid:"required~Name is required"`
	ClassID     *int       `json:"class_id"`
	Section     string     `json:"section"`
	RollNo      *int       `json:"roll_no"`
	DOB         *time.Time `json:"dob"`
	Gender      string     `json:"gender"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	ParentID    *int       `json:"parent_id"`
	BloodGroup  string     `json:"blood_group"`
}

// StudentUpdate lists the mutable fields only. Nil means "leave unchanged".
type StudentUpdate struct {
	Name         *string    `json:"name"`
	ClassID      *int       `json:"class_id"`
	Section      *string    `json:"section"`
	RollNo       *int       `json:"roll_no"`
	DOB          *time.Time `json:"dob"`
	Gender       *string    `json:"gender"`
	Address      *string    `json:"address"`
	Phone        *string    `json:"phone"`
	ParentID     *int       `json:"parent_id"`
	BloodGroup   *string    `json:"blood_group"`
	ProfileImage *string    `json:"profile_image"`
}

type StudentRepo interface {
	Create(ctx context.Context, user *User, student *Student) error
	GetAll(ctx context.Context) (*[]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	GetByUserID(ctx context.Context, userID int) (*Student, error)
	GetByAdmissionNo(ctx context.Context, admissionNo string) (*Student, error)
	GetByClass(ctx context.Context, classID int) (*[]Student, error)
	GetByClasses(ctx context.Context, classIDs []int) (*[]Student, error)
	GetByParent(ctx context.Context, parentID int) (*[]Student, error)
	Update(ctx context.Context, id int, upd *StudentUpdate) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
