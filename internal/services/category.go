package services

import (
	"errors"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type QuizCategoryService struct {
	db *gorm.DB
}

func NewQuizCategoryService(db *gorm.DB) *QuizCategoryService {
	return &QuizCategoryService{db: db}
}

func (s *QuizCategoryService) GetAll() ([]models.QuizCategory, error) {
	var categories []models.QuizCategory
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *QuizCategoryService) GetByID(id uint) (*models.QuizCategory, error) {
	var category models.QuizCategory
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *QuizCategoryService) Create(name string) (*models.QuizCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := models.QuizCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *QuizCategoryService) Update(id uint, name string) (*models.QuizCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category.Name = name
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *QuizCategoryService) Delete(id uint) error {
	result := s.db.Delete(&models.QuizCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

type BlogCategoryService struct {
	db *gorm.DB
}

func NewBlogCategoryService(db *gorm.DB) *BlogCategoryService {
	return &BlogCategoryService{db: db}
}

func (s *BlogCategoryService) GetAll() ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *BlogCategoryService) GetByID(id uint) (*models.BlogCategory, error) {
	var category models.BlogCategory
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *BlogCategoryService) Create(name string) (*models.BlogCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := models.BlogCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *BlogCategoryService) Update(id uint, name string) (*models.BlogCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category.Name = name
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *BlogCategoryService) Delete(id uint) error {
	result := s.db.Delete(&models.BlogCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
