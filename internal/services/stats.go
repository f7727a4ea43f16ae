package services

import (
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type PublicStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalQuizzes int64 `json:"total_quizzes"`
	TotalBlogs   int64 `json:"total_blogs"`
}

// Public returns landing-page totals. Admin accounts are not counted as users.
func (s *StatsService) Public() (*PublicStats, error) {
	var stats PublicStats

	if err := s.db.Model(&models.User{}).
		Where("role <> ?", models.RoleAdmin).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quiz{}).Count(&stats.TotalQuizzes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Blog{}).Count(&stats.TotalBlogs).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
