package domain

import (
	"context"
	"time"
)

type Parent struct {
	ParentID   int       `gorm:"primaryKey;autoIncrement" json:"parent_id"`
	UserID     int       `gorm:"not null;unique" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone" valid:"required~Phone is required"`
	Email      *string   `gorm:"type:varchar(255)" json:"email" valid:"email~Invalid email format,optional"`
	Occupation string    `gorm:"type:varchar(255)" json:"occupation"`
	Address    string    `gorm:"type:varchar(500)" json:"address"`
	Relation   string    `gorm:"type:varchar(50)" json:"relation"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateParentRequest struct {
	Email        string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password     string  `json:"password" valid:"required~Password is required"`
	Name         string  `json:"name" valid:"required~Name is required"`
	Phone        string  `json:"phone" valid:"required~Phone is required"`
	ContactEmail *string `json:"contact_email"`
	Occupation   string  `json:"occupation"`
	Address      string  `json:"address"`
	Relation     string  `json:"relation"`
}

type ParentUpdate struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Occupation *string `json:"occupation"`
	Address    *string `json:"address"`
	Relation   *string `json:"relation"`
}

type ParentRepo interface {
	Create(ctx context.Context, user *User, parent *Parent) error
	GetAll(ctx context.Context) (*[]Parent, error)
	GetByID(ctx context.Context, id int) (*Parent, error)
	GetByUserID(ctx context.Context, userID int) (*Parent, error)
	GetByIDs(ctx context.Context, ids []int) (*[]Parent, error)
	Update(ctx context.Context, id int, upd *ParentUpdate) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
