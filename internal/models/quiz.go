package models

import "time"

type Quiz struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CategoryID     uint           `gorm:"not null;index" json:"category_id"`
	Category       *QuizCategory  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	TotalQuestions int            `gorm:"not null;default:0" json:"total_questions"`
	TimeLimit      int            `gorm:"not null;default:10" json:"time_limit"`
	ImageCover     string         `gorm:"size:500" json:"image_cover,omitempty"`
	StoragePath    string         `gorm:"size:255" json:"-"`
	TotalPlayers   int            `gorm:"not null;default:0" json:"total_players"`
	CreatedBy      uint           `gorm:"not null;index" json:"created_by"`
	Creator        *User          `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Questions      []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
