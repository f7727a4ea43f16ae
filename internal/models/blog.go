package models

import "time"

type Blog struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CategoryID  uint          `gorm:"not null;index" json:"category_id"`
	Category    *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	ImageURL    string        `gorm:"size:500" json:"image_url,omitempty"`
	StoragePath string        `gorm:"size:255" json:"-"`
	AuthorName  string        `gorm:"size:100;not null" json:"author_name"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
