package domain

import (
	"context"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleStudent = "student"
)

type User struct {
	UserID    int       `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:role_enum;not null" json:"role" valid:"required~Role is required,in(admin|teacher|parent|student)~Invalid role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
}
