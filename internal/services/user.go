package services

import (
	"errors"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Avatar").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SelectAvatar assigns an active avatar to the user's profile.
func (s *UserService) SelectAvatar(userID, avatarID uint) (*models.User, error) {
	var avatar models.Avatar
	if err := s.db.First(&avatar, avatarID).Error; err != nil {
		return nil, ErrAvatarNotFound
	}
	if !avatar.IsActive {
		return nil, errors.New("this avatar is not available")
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_id", avatarID).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

func (s *UserService) RemoveAvatar(userID uint) (*models.User, error) {
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_id", nil).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

type UserFilter struct {
	Role   string
	Search string
}

// List returns users matching the filter, for the admin panel.
func (s *UserService) List(filter UserFilter) ([]models.User, error) {
	query := s.db.Preload("Avatar").Order("created_at DESC")
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		query = query.Where("username LIKE ?", "%"+filter.Search+"%")
	}

	var users []models.User
	err := query.Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	return s.GetProfile(userID)
}

// Delete removes a user account. Admins cannot delete themselves or other
// admin accounts.
func (s *UserService) Delete(userID, adminID uint) (*models.User, error) {
	if userID == adminID {
		return nil, errors.New("you cannot delete your own account")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin {
		return nil, errors.New("you cannot delete another admin account")
	}

	if err := s.db.Delete(&models.User{}, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateRole(userID, adminID uint, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, errors.New("valid role is required (user or admin)")
	}
	if userID == adminID {
		return nil, errors.New("you cannot change your own role")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
