package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleHR          UserRole = "hr"
	RoleRecruiter   UserRole = "recruiter"
	RoleInterviewer UserRole = "interviewer"
	RoleCandidate   UserRole = "candidate"
)

type User struct {
	ID       string   `json:"id" gorm:"primaryKey;size:36"`
	Username string   `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Role     UserRole `json:"role" gorm:"not null;default:hr" validate:"omitempty,oneof=hr recruiter interviewer candidate"`
	Name     string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`

	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
