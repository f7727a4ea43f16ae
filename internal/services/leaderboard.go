package services

import (
	"errors"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// RankedUser is a leaderboard row with its 1-based position attached.
type RankedUser struct {
	models.User
	Rank int `json:"rank"`
}

// TopUsers orders by total points, then completed quizzes, then perfect
// attempts. Limit is clamped by the handler to 1..100.
func (s *LeaderboardService) TopUsers(limit int) ([]RankedUser, error) {
	if limit <= 0 {
		limit = 10
	}

	var users []models.User
	err := s.db.Preload("Avatar").
		Order("total_points DESC, total_quiz_completed DESC, total_perfect_attempts DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedUser, 0, len(users))
	for i, u := range users {
		ranked = append(ranked, RankedUser{User: u, Rank: i + 1})
	}
	return ranked, nil
}

// UserRank computes a user's global position: one more than the number of
// users holding strictly more points.
func (s *LeaderboardService) UserRank(userID uint) (*RankedUser, error) {
	var user models.User
	err := s.db.Preload("Avatar").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var above int64
	if err := s.db.Model(&models.User{}).
		Where("total_points > ?", user.TotalPoints).
		Count(&above).Error; err != nil {
		return nil, err
	}

	return &RankedUser{User: user, Rank: int(above) + 1}, nil
}

type LeaderboardWithUser struct {
	TopUsers    []RankedUser `json:"top_users"`
	CurrentUser *RankedUser  `json:"current_user"`
	IsInTop     bool         `json:"is_in_top"`
}

func (s *LeaderboardService) WithUser(userID uint, limit int) (*LeaderboardWithUser, error) {
	top, err := s.TopUsers(limit)
	if err != nil {
		return nil, err
	}

	current, err := s.UserRank(userID)
	if err != nil {
		return nil, err
	}

	isInTop := false
	for _, u := range top {
		if u.ID == userID {
			isInTop = true
			break
		}
	}

	return &LeaderboardWithUser{TopUsers: top, CurrentUser: current, IsInTop: isInTop}, nil
}
