package models

import "time"

type Avatar struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	ImageURL    string    `gorm:"size:500;not null" json:"image_url"`
	StoragePath string    `gorm:"size:255" json:"-"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
