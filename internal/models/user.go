package models

import "time"

type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Username             string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash         string    `gorm:"size:255;not null" json:"-"`
	Role                 string    `gorm:"size:10;not null;default:'user'" json:"role"`
	AvatarID             *uint     `gorm:"index" json:"avatar_id,omitempty"`
	Avatar               *Avatar   `gorm:"foreignKey:AvatarID" json:"avatar,omitempty"`
	TotalPoints          int       `gorm:"not null;default:0" json:"total_points"`
	TotalQuizCompleted   int       `gorm:"not null;default:0" json:"total_quiz_completed"`
	TotalPerfectAttempts int       `gorm:"not null;default:0" json:"total_perfect_attempts"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
