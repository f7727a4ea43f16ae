package services

import (
	"errors"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.Preload("Category").Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (s *BlogService) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Preload("Category").First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) GetByCategory(categoryID uint) ([]models.Blog, error) {
	var category models.BlogCategory
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	var blogs []models.Blog
	err := s.db.Where("category_id = ?", categoryID).
		Preload("Category").
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

type CreateBlogInput struct {
	CategoryID  uint
	Title       string
	Description string
	AuthorName  string
	ImageURL    string
	StoragePath string
}

func (s *BlogService) Create(input CreateBlogInput) (*models.Blog, error) {
	if input.CategoryID == 0 || strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.AuthorName) == "" {
		return nil, errors.New("category ID, title, description, and author name are required")
	}

	var category models.BlogCategory
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	blog := models.Blog{
		CategoryID:  input.CategoryID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		AuthorName:  strings.TrimSpace(input.AuthorName),
		ImageURL:    input.ImageURL,
		StoragePath: input.StoragePath,
	}
	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	return s.GetByID(blog.ID)
}

type UpdateBlogInput struct {
	CategoryID  *uint
	Title       *string
	Description *string
	AuthorName  *string
	ImageURL    *string
	StoragePath *string
}

func (s *BlogService) Update(id uint, input UpdateBlogInput) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		return nil, ErrBlogNotFound
	}

	if input.CategoryID != nil {
		var category models.BlogCategory
		if err := s.db.First(&category, *input.CategoryID).Error; err != nil {
			return nil, ErrCategoryNotFound
		}
		blog.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		blog.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		blog.Description = strings.TrimSpace(*input.Description)
	}
	if input.AuthorName != nil {
		blog.AuthorName = strings.TrimSpace(*input.AuthorName)
	}
	if input.ImageURL != nil {
		blog.ImageURL = *input.ImageURL
	}
	if input.StoragePath != nil {
		blog.StoragePath = *input.StoragePath
	}

	if err := s.db.Save(&blog).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *BlogService) Delete(id uint) (string, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		return "", ErrBlogNotFound
	}
	if err := s.db.Delete(&blog).Error; err != nil {
		return "", err
	}
	return blog.StoragePath, nil
}
