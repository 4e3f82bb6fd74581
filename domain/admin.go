package domain

import (
	"context"
	"time"
)

type Admin struct {
	AdminID     int       `gorm:"primaryKey;autoIncrement" json:"admin_id"`
	UserID      int       `gorm:"not null;unique" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	Designation string    `gorm:"type:varchar(255)" json:"designation"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateAdminRequest struct {
	Email       string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password    string `json:"password" valid:"required~Password is required"`
	Name        string `json:"name" valid:"required~Name is required"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
}

type AdminRepo interface {
	Create(ctx context.Context, user *User, admin *Admin) error
	GetAll(ctx context.Context) (*[]Admin, error)
	GetByUserID(ctx context.Context, userID int) (*Admin, error)
	Delete(ctx context.Context, id int) error
}
