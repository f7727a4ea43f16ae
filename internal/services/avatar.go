package services

import (
	"errors"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type AvatarService struct {
	db *gorm.DB
}

func NewAvatarService(db *gorm.DB) *AvatarService {
	return &AvatarService{db: db}
}

// GetAll includes inactive avatars; admin use only.
func (s *AvatarService) GetAll() ([]models.Avatar, error) {
	var avatars []models.Avatar
	err := s.db.Order("created_at DESC").Find(&avatars).Error
	return avatars, err
}

func (s *AvatarService) GetActive() ([]models.Avatar, error) {
	var avatars []models.Avatar
	err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&avatars).Error
	return avatars, err
}

func (s *AvatarService) GetByID(id uint) (*models.Avatar, error) {
	var avatar models.Avatar
	if err := s.db.First(&avatar, id).Error; err != nil {
		return nil, ErrAvatarNotFound
	}
	return &avatar, nil
}

func (s *AvatarService) Create(name, imageURL, storagePath string) (*models.Avatar, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("avatar name is required")
	}
	if imageURL == "" {
		return nil, errors.New("avatar image is required")
	}

	avatar := models.Avatar{
		Name:        name,
		ImageURL:    imageURL,
		StoragePath: storagePath,
		IsActive:    true,
	}
	if err := s.db.Create(&avatar).Error; err != nil {
		return nil, err
	}
	return &avatar, nil
}

type UpdateAvatarInput struct {
	Name        *string
	IsActive    *bool
	ImageURL    *string
	StoragePath *string
}

func (s *AvatarService) Update(id uint, input UpdateAvatarInput) (*models.Avatar, error) {
	avatar, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		avatar.Name = strings.TrimSpace(*input.Name)
	}
	if input.IsActive != nil {
		avatar.IsActive = *input.IsActive
	}
	if input.ImageURL != nil {
		avatar.ImageURL = *input.ImageURL
	}
	if input.StoragePath != nil {
		avatar.StoragePath = *input.StoragePath
	}

	if err := s.db.Save(avatar).Error; err != nil {
		return nil, err
	}
	return avatar, nil
}

func (s *AvatarService) Delete(id uint) (string, error) {
	avatar, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	if err := s.db.Delete(avatar).Error; err != nil {
		return "", err
	}
	return avatar.StoragePath, nil
}
