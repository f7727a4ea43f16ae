package models

import "time"

// QuizAttempt is append-only: rows are inserted once per completed run
// and never updated or deleted.
type QuizAttempt struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_attempt_user_quiz" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QuizID       uint      `gorm:"not null;index:idx_attempt_user_quiz" json:"quiz_id"`
	Quiz         *Quiz     `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Score        int       `gorm:"not null" json:"score"`
	TotalCorrect int       `gorm:"not null" json:"total_correct"`
	IsPerfect    bool      `gorm:"not null;default:false" json:"is_perfect"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `gorm:"index" json:"completed_at"`
}
